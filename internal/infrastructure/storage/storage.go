package storage

import "io"

// Uploader define o comportamento mínimo de um backend de objetos para
// publicar as imagens de relatório
type Uploader interface {
	// Upload grava o objeto e devolve a URL pública
	Upload(key string, body io.ReadSeeker, contentType string) (string, error)
}
