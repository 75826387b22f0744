// ./connect21-backend/internal/services/identity_service.go
package services

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"connect21/backend/internal/models"
)

// userPageSize is the provider's maximum page size for account listing.
const userPageSize = 1000

// pageFunc fetches one page of accounts, returning the users, the
// continuation token for the next page ("" when exhausted), and any error.
type pageFunc func(ctx context.Context, token string) ([]models.UserSummary, string, error)

// IdentityService wraps the Firebase Auth client.
type IdentityService struct {
	client    *auth.Client
	fetchPage pageFunc
}

// NewIdentityService obtains the Auth client from an initialized app.
func NewIdentityService(ctx context.Context, app *firebase.App) (*IdentityService, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Auth client: %w", err)
	}
	s := &IdentityService{client: client}
	s.fetchPage = s.providerPage
	return s, nil
}

// CreateUser creates an authentication account. Email and password are
// validated upstream; display name and phone number are attached only when
// present.
func (s *IdentityService) CreateUser(ctx context.Context, params models.CreateUserParams) (models.UserSummary, error) {
	user := (&auth.UserToCreate{}).
		Email(params.Email).
		Password(params.Password)
	if params.DisplayName != "" {
		user = user.DisplayName(params.DisplayName)
	}
	if params.PhoneNumber != "" {
		user = user.PhoneNumber(params.PhoneNumber)
	}

	record, err := s.client.CreateUser(ctx, user)
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("could not create user: %w", err)
	}
	log.Printf("[IdentityService] Created account %s", record.UID)
	return toSummary(record), nil
}

// ListUsers returns every account the provider knows about, in provider
// order. The provider only exposes bounded pages plus a continuation token,
// so this loops until the token runs out, accumulating as it goes. Any page
// failure aborts the whole enumeration with an error; an empty slice
// therefore always means zero accounts exist.
func (s *IdentityService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users := make([]models.UserSummary, 0)
	token := ""
	for {
		page, next, err := s.fetchPage(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("listing users: %w", err)
		}
		users = append(users, page...)
		if next == "" {
			return users, nil
		}
		token = next
	}
}

// providerPage fetches a single page from Firebase Auth.
func (s *IdentityService) providerPage(ctx context.Context, token string) ([]models.UserSummary, string, error) {
	pager := iterator.NewPager(s.client.Users(ctx, ""), userPageSize, token)
	var records []*auth.ExportedUserRecord
	next, err := pager.NextPage(&records)
	if err != nil {
		return nil, "", err
	}
	page := make([]models.UserSummary, 0, len(records))
	for _, record := range records {
		page = append(page, toSummary(record.UserRecord))
	}
	return page, next, nil
}

func toSummary(record *auth.UserRecord) models.UserSummary {
	return models.UserSummary{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhoneNumber: record.PhoneNumber,
		Disabled:    record.Disabled,
	}
}
