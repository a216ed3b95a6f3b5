package supportwindow

import (
	"context"
	_ "embed"

	"github.com/aws-samples/eks-notifier/internal/domain/entity"
)

//go:embed versions.json
var embeddedDocument []byte

// StaticSource serves the document compiled into the binary.
type StaticSource struct {
	document []byte
}

func NewStaticSource() StaticSource {
	return StaticSource{document: embeddedDocument}
}

func (s StaticSource) LoadSupportWindows(_ context.Context) (entity.SupportWindowTable, error) {
	return Decode(s.document)
}
