package endpoints

import (
	"fmt"
	"tabnews/internal/config"
	"tabnews/internal/core/domain/activation"
)

const productionHost = "https://www.tabnews.com.br"

// Builder derives the externally visible URLs from the deployment
// configuration. It is a pure value; build one per config.
type Builder struct {
	stage         string
	ci            bool
	webServerHost string
	webServerPort uint16
	previewURL    string
}

func New(cfg *config.Config) Builder {
	return Builder{
		stage:         cfg.Stage,
		ci:            cfg.CI,
		webServerHost: cfg.WebServerHost,
		webServerPort: cfg.WebServerPort,
		previewURL:    cfg.PreviewURL,
	}
}

func (b Builder) WebServerHost() string {
	if b.stage == config.StageTest || b.stage == config.StageDevelopment || b.ci {
		return fmt.Sprintf("http://%s:%d", b.webServerHost, b.webServerPort)
	}
	if b.stage == config.StagePreview {
		return "https://" + b.previewURL
	}
	return productionHost
}

func (b Builder) ActivationAPI() string {
	return b.WebServerHost() + "/api/v1/activation"
}

// ActivationPage returns the activation page URL for the token, or the
// bare activation page when tokenID is empty.
func (b Builder) ActivationPage(tokenID activation.TokenID) string {
	if tokenID == "" {
		return b.WebServerHost() + "/cadastro/ativar"
	}
	return fmt.Sprintf("%s/cadastro/ativar/%s", b.WebServerHost(), tokenID)
}
