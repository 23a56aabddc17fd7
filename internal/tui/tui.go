package tui

import (
	"context"

	"github.com/MKhiriev/go-account-mgr/internal/logger"
	"github.com/MKhiriev/go-account-mgr/internal/service"
	"github.com/MKhiriev/go-account-mgr/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run wires the entity store, the filter engine and the coordinator together
// and drives the interactive session until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	entities := state.NewStore()
	sink := &statusSink{}
	filters := state.NewFilterEngine(entities, sink)
	driver := newEditorDriver(t.services)
	confirmer := &armedConfirmer{}

	coordinator := state.NewCoordinator(entities, filters, t.services, state.Ports{
		AccountEditor:  driver,
		CategoryEditor: driver,
		Confirmer:      confirmer,
		Sink:           sink,
	}, t.logger)

	if err := coordinator.LoadData(ctx); err != nil {
		return err
	}

	model := newBrowseModel(ctx, coordinator, entities, filters, driver, confirmer, sink)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
