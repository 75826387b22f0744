// ./connect21-backend/internal/services/directory_service.go
package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/oauth2/google"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"
)

// DirectoryService wraps the Admin SDK Directory API for group membership.
type DirectoryService struct {
	members *admin.MembersService
}

// NewDirectoryService builds a Directory client from service-account
// credentials. Directory calls only work on behalf of a Workspace admin, so
// the JWT config impersonates adminEmail.
func NewDirectoryService(ctx context.Context, credentialsJSON []byte, adminEmail string) (*DirectoryService, error) {
	log.Println("[DirectoryService] Initializing...")
	config, err := google.JWTConfigFromJSON(credentialsJSON, admin.AdminDirectoryGroupMemberScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account credentials: %w", err)
	}
	config.Subject = adminEmail
	client := config.Client(ctx)

	srv, err := admin.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Directory client: %w", err)
	}

	log.Println("[DirectoryService] Successfully initialized Directory client.")
	return &DirectoryService{members: srv.Members}, nil
}

// AddGroupMember inserts userEmail into the group addressed by groupEmail.
func (s *DirectoryService) AddGroupMember(ctx context.Context, groupEmail, userEmail string) (*admin.Member, error) {
	member := &admin.Member{
		Email: userEmail,
		Role:  "MEMBER",
	}
	inserted, err := s.members.Insert(groupEmail, member).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not add %s to group %s: %w", userEmail, groupEmail, err)
	}
	log.Printf("[DirectoryService] Added %s to group %s", userEmail, groupEmail)
	return inserted, nil
}
