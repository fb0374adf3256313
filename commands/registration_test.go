package commands

import (
	"context"
	"testing"

	landing "github.com/goliatone/go-landing"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

func newModule(t *testing.T, opts ...landing.Option) *landing.Module {
	t.Helper()
	cfg := landing.DefaultConfig()
	cfg.Logging.Enabled = false

	module, err := landing.New(cfg, opts...)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func withEchoTranslator() landing.Option {
	return landing.WithTranslator(interfaces.TextTranslatorFunc(
		func(_ context.Context, text, _ string) (string, error) {
			return text, nil
		},
	))
}

func TestRegisterModuleCommandsBuildsHandlers(t *testing.T) {
	module := newModule(t, withEchoTranslator())

	registry := &recordingRegistry{}
	dispatcher := &recordingDispatcher{}

	result, err := RegisterModuleCommands(module, RegistrationOptions{
		Registry:   registry,
		Dispatcher: dispatcher,
	})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}

	if len(result.Handlers) != 5 {
		t.Fatalf("expected 5 handlers with a translator, got %d", len(result.Handlers))
	}
	if len(registry.handlers) != len(result.Handlers) {
		t.Fatalf("expected registry to record all handlers, got %d of %d", len(registry.handlers), len(result.Handlers))
	}
	if len(dispatcher.subscriptions) != len(result.Handlers) {
		t.Fatalf("expected one subscription per handler, got %d", len(dispatcher.subscriptions))
	}
}

func TestRegisterModuleCommandsWithoutRegistrars(t *testing.T) {
	module := newModule(t, withEchoTranslator())

	result, err := RegisterModuleCommands(module, RegistrationOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if len(result.Handlers) == 0 {
		t.Fatal("expected handlers to be built even without registrars")
	}
	if len(result.Subscriptions) != 0 {
		t.Fatalf("expected no dispatcher subscriptions without dispatcher, got %d", len(result.Subscriptions))
	}
}

func TestRegisterModuleCommandsSkipsSeedLocaleWithoutTranslator(t *testing.T) {
	module := newModule(t)

	result, err := RegisterModuleCommands(module, RegistrationOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}

	for _, handler := range result.Handlers {
		if _, ok := handler.(*SeedLocaleHandler); ok {
			t.Fatal("expected seed-locale handler not to be built without a translator")
		}
	}
}

func TestRegisterModuleCommandsNilModule(t *testing.T) {
	result, err := RegisterModuleCommands(nil, RegistrationOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if len(result.Handlers) != 0 {
		t.Fatalf("expected no handlers for a nil module, got %d", len(result.Handlers))
	}
}

func TestRegisteredHandlersReachModuleServices(t *testing.T) {
	module := newModule(t)
	docs := module.Documents()

	if _, err := docs.CreateTenant(context.Background(), landing.CreateTenantInput{Name: "Shop X"}); err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	if _, err := docs.CreateLocale(context.Background(), landing.CreateLocaleInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("create locale: %v", err)
	}

	result, err := RegisterModuleCommands(module, RegistrationOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}

	var publish *PublishDocumentHandler
	for _, handler := range result.Handlers {
		if h, ok := handler.(*PublishDocumentHandler); ok {
			publish = h
		}
	}
	if publish == nil {
		t.Fatal("expected a publish handler among the registered handlers")
	}

	if err := publish.Execute(context.Background(), PublishDocumentCommand{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("execute publish: %v", err)
	}

	res, err := docs.Resolve(context.Background(), "shop-x", "US", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !res.Document.IsPublished {
		t.Fatal("document should be published through the registered handler")
	}
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

type recordingDispatcher struct {
	handlers      []any
	subscriptions []*recordingSubscription
	err           error
}

func (d *recordingDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.handlers = append(d.handlers, handler)
	sub := &recordingSubscription{handler: handler}
	d.subscriptions = append(d.subscriptions, sub)
	return sub, nil
}

type recordingSubscription struct {
	handler      any
	unsubscribed bool
}

func (s *recordingSubscription) Unsubscribe() {
	s.unsubscribed = true
}
