package service

import (
	"context"

	"github.com/abstract-333/name-origin-api/internal/mediator"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
)

// GetNameOriginsCommand asks for the origins of Name. Name is validated by
// the handler.
type GetNameOriginsCommand struct {
	Name string
}

// GetFrequentNamesCommand asks for the most probable names of a country.
type GetFrequentNamesCommand struct {
	CountryCode string
}

// SyncCountriesCommand imports the provider's full country list.
type SyncCountriesCommand struct{}

func (s *Service) HandleGetNameOrigins(ctx context.Context, cmd GetNameOriginsCommand) ([]*models.NameOrigin, error) {
	name, err := models.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}
	return s.GetNameOrigins(ctx, name)
}

func (s *Service) HandleGetFrequentNames(ctx context.Context, cmd GetFrequentNamesCommand) ([]*models.NameOrigin, error) {
	return s.GetFrequentNamesForCountry(ctx, cmd.CountryCode)
}

func (s *Service) HandleSyncCountries(ctx context.Context, _ SyncCountriesCommand) (SyncResult, error) {
	return s.SyncCountries(ctx)
}

// Registrations binds every command this service handles.
func (s *Service) Registrations() []mediator.Registration {
	return []mediator.Registration{
		mediator.Handle(mediator.HandlerFunc[GetNameOriginsCommand, []*models.NameOrigin](s.HandleGetNameOrigins)),
		mediator.Handle(mediator.HandlerFunc[GetFrequentNamesCommand, []*models.NameOrigin](s.HandleGetFrequentNames)),
		mediator.Handle(mediator.HandlerFunc[SyncCountriesCommand, SyncResult](s.HandleSyncCountries)),
	}
}
