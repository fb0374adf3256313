package logging

import (
	"github.com/goliatone/go-landing/pkg/interfaces"
)

const (
	rootModule       = "landing"
	documentsModule  = "landing.documents"
	localeSyncModule = "landing.localesync"
	translateModule  = "landing.translate"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// DocumentsLogger returns the logger namespace reserved for the document service.
func DocumentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentsModule)
}

// LocaleSyncLogger returns the logger namespace reserved for cross-locale maintenance passes.
func LocaleSyncLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, localeSyncModule)
}

// TranslateLogger returns the logger namespace reserved for translation seeding.
func TranslateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translateModule)
}
