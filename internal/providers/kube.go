package providers

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/ribbon/internal/kube"
	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
)

// KubeContextReader yields the active kubeconfig context.
type KubeContextReader interface {
	CurrentContext() (kube.ContextInfo, error)
}

// Kube shows the current kubeconfig context and namespace.
type Kube struct {
	reader KubeContextReader
}

// NewKube creates the provider. A nil reader uses the default kubeconfig.
func NewKube(reader KubeContextReader) *Kube {
	if reader == nil {
		reader = kube.Loader{}
	}
	return &Kube{reader: reader}
}

func (*Kube) Name() string { return "kube" }

func (p *Kube) Provide(_ context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	info, err := p.reader.CurrentContext()
	if errors.Is(err, kube.ErrNoContext) {
		return nil
	}
	if err != nil {
		return err
	}
	out.Append(prompt.Pad(pc.Shell.Escape(info.Label())), pc.Palette.KubeFG, pc.Palette.KubeBG)
	return nil
}
