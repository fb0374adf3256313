// Package commands exposes the landing command handlers to hosts that run
// them through a CLI, a job queue, or a dispatcher. It builds the handlers
// from a configured landing.Module and optionally registers them with
// host-supplied integrations.
package commands

import (
	"errors"

	landing "github.com/goliatone/go-landing"
	internalcmd "github.com/goliatone/go-landing/internal/commands"
	documentscmd "github.com/goliatone/go-landing/internal/commands/documents"
	localesynccmd "github.com/goliatone/go-landing/internal/commands/localesync"
	translatecmd "github.com/goliatone/go-landing/internal/commands/translate"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// Command messages and handlers re-exported so hosts can construct and
// dispatch them without reaching into internal packages.
type (
	PublishDocumentCommand   = documentscmd.PublishDocumentCommand
	UnpublishDocumentCommand = documentscmd.UnpublishDocumentCommand
	SyncAnchorsCommand       = localesynccmd.SyncAnchorsCommand
	SyncFilenamesCommand     = localesynccmd.SyncFilenamesCommand
	SeedLocaleCommand        = translatecmd.SeedLocaleCommand

	PublishDocumentHandler   = documentscmd.PublishDocumentHandler
	UnpublishDocumentHandler = documentscmd.UnpublishDocumentHandler
	SyncAnchorsHandler       = localesynccmd.SyncAnchorsHandler
	SyncFilenamesHandler     = localesynccmd.SyncFilenamesHandler
	SeedLocaleHandler        = translatecmd.SeedLocaleHandler
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry   CommandRegistry
	Dispatcher CommandDispatcher
	// LoggerProvider overrides the module's provider for command logging.
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any
// dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterModuleCommands builds the command handlers backed by the module's
// services and optionally registers them with registry and dispatcher
// integrations. The seed-locale handler is built only when the module carries
// a translator.
func RegisterModuleCommands(module *landing.Module, opts RegistrationOptions) (*RegistrationResult, error) {
	if module == nil {
		return &RegistrationResult{}, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = module.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	loggerFor := func(name string) interfaces.Logger {
		return internalcmd.CommandLogger(provider, name)
	}

	if service := module.Documents(); service != nil {
		logger := loggerFor("documents")
		register(documentscmd.NewPublishDocumentHandler(service, logger))
		register(documentscmd.NewUnpublishDocumentHandler(service, logger))
	}

	if service := module.LocaleSync(); service != nil {
		logger := loggerFor("localesync")
		register(localesynccmd.NewSyncAnchorsHandler(service, logger))
		register(localesynccmd.NewSyncFilenamesHandler(service, logger))
	}

	if service := module.Translate(); service != nil {
		register(translatecmd.NewSeedLocaleHandler(service, loggerFor("translate")))
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("commands: no handlers registered; module services are not configured")
	}

	return result, errs
}
