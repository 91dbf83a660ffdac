package email

type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}
type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// These types are used to apply data to email templates
type RightsRequest struct {
	CreatorHandle string
	Platform      string
	Permalink     string
	Message       string
	BrandName     string
}

type RightsResolved struct {
	CreatorHandle string
	Platform      string
	Permalink     string
	Status        string
}
