package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// SearchContactsInput is the input schema for the search_contacts tool.
type SearchContactsInput struct {
	Query string `json:"query,omitempty" jsonschema:"substring matched against name, company, title, email, and notes"`
	Tag   string `json:"tag,omitempty" jsonschema:"narrow results to contacts carrying this tag"`
}

// SearchContactsOutput is the output schema for the search_contacts tool.
type SearchContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
	Count    int             `json:"count"`
}

// ContactOutput represents a single contact in tool results.
type ContactOutput struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title,omitempty"`
	Company        string   `json:"company,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	MeetingContext string   `json:"meeting_context,omitempty"`
}

// GetCardInput is the input schema for the get_card tool.
type GetCardInput struct {
	ID string `json:"id,omitempty" jsonschema:"card id; omit for the default card"`
}

// GetCardOutput is the output schema for the get_card tool.
type GetCardOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// GenerateFollowUpInput is the input schema for the generate_followup tool.
type GenerateFollowUpInput struct {
	ContactID    string `json:"contact_id" jsonschema:"id of the contact to follow up with"`
	MeetingNotes string `json:"meeting_notes,omitempty" jsonschema:"what was discussed"`
	Goals        string `json:"goals,omitempty" jsonschema:"what the follow-up should achieve"`
	Style        string `json:"style,omitempty" jsonschema:"preferred tone: default, formal, casual, or friendly"`
	SenderName   string `json:"sender_name,omitempty" jsonschema:"name to sign the messages with"`
}

// FollowUpMessageOutput is a single drafted message.
type FollowUpMessageOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerateFollowUpOutput is the output schema for the generate_followup tool.
type GenerateFollowUpOutput struct {
	Formal         FollowUpMessageOutput `json:"formal"`
	Casual         FollowUpMessageOutput `json:"casual"`
	Friendly       FollowUpMessageOutput `json:"friendly"`
	IsGenerated    bool                  `json:"is_generated"`
	FallbackReason string                `json:"fallback_reason,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_contacts",
		Description: "Search collected contacts by text query and/or tag",
	}, s.handleSearchContacts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_card",
		Description: "Get one of the user's own business cards (the default card when no id is given)",
	}, s.handleGetCard)

	if s.ports.FollowUp != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "generate_followup",
			Description: "Draft follow-up messages for a contact in three tones",
		}, s.handleGenerateFollowUp)
	}
}

// handleSearchContacts handles the search_contacts tool invocation.
func (s *Server) handleSearchContacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchContactsInput,
) (*mcp.CallToolResult, SearchContactsOutput, error) {
	contacts, err := s.ports.Contact.FilterContacts(ctx, input.Query, input.Tag)
	if err != nil {
		return nil, SearchContactsOutput{}, err
	}

	output := SearchContactsOutput{
		Contacts: make([]ContactOutput, len(contacts)),
		Count:    len(contacts),
	}
	for i := range contacts {
		output.Contacts[i] = ContactOutput{
			ID:             contacts[i].ID,
			Name:           contacts[i].CardData.Name,
			Title:          contacts[i].CardData.Title,
			Company:        contacts[i].CardData.Company,
			Email:          contacts[i].CardData.Email,
			Phone:          contacts[i].CardData.Phone,
			Tags:           contacts[i].Tags,
			Notes:          contacts[i].Notes,
			MeetingContext: contacts[i].MeetingContext,
		}
	}

	return nil, output, nil
}

// handleGetCard handles the get_card tool invocation.
func (s *Server) handleGetCard(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetCardInput,
) (*mcp.CallToolResult, GetCardOutput, error) {
	var card *domain.Card
	var err error
	if input.ID == "" {
		card, err = s.ports.Card.PrimaryCard(ctx)
	} else {
		card, err = s.ports.Card.CardByID(ctx, input.ID)
	}
	if err != nil {
		return nil, GetCardOutput{}, err
	}

	return nil, GetCardOutput{
		ID:       card.ID,
		Name:     card.Name,
		Title:    card.Title,
		Company:  card.Company,
		Email:    card.Email,
		Phone:    card.Phone,
		Website:  card.Website,
		LinkedIn: card.LinkedIn,
		Twitter:  card.Twitter,
		Bio:      card.Bio,
	}, nil
}

// handleGenerateFollowUp handles the generate_followup tool invocation.
func (s *Server) handleGenerateFollowUp(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateFollowUpInput,
) (*mcp.CallToolResult, GenerateFollowUpOutput, error) {
	if input.ContactID == "" {
		return nil, GenerateFollowUpOutput{}, errors.New("contact_id is required")
	}

	contact, err := s.ports.Contact.ContactByID(ctx, input.ContactID)
	if err != nil {
		return nil, GenerateFollowUpOutput{}, err
	}

	result, err := s.ports.FollowUp.Generate(ctx, domain.FollowUpRequest{
		ContactName:  contact.CardData.Name,
		Title:        contact.CardData.Title,
		Company:      contact.CardData.Company,
		MeetingNotes: input.MeetingNotes,
		Goals:        input.Goals,
		Style:        domain.FollowUpStyle(input.Style),
		SenderName:   input.SenderName,
	})
	if err != nil {
		return nil, GenerateFollowUpOutput{}, err
	}

	return nil, GenerateFollowUpOutput{
		Formal:         FollowUpMessageOutput{Subject: result.Formal.Subject, Body: result.Formal.Body},
		Casual:         FollowUpMessageOutput{Subject: result.Casual.Subject, Body: result.Casual.Body},
		Friendly:       FollowUpMessageOutput{Subject: result.Friendly.Subject, Body: result.Friendly.Body},
		IsGenerated:    result.Generated,
		FallbackReason: result.FallbackReason,
	}, nil
}
