package email

import "embed"

//go:embed templates/*
var emailTemplates embed.FS

const (
	// RightsRequestTemplate is sent to a creator asking permission to reuse their post.
	RightsRequestTemplate = "rights_request"
	// RightsResolvedTemplate is sent to the requesting operator once the creator answers.
	RightsResolvedTemplate = "rights_resolved"
)
