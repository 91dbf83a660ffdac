package email

import (
	"fmt"
	"html/template"
)

// Return raw template for email
func getEmailTemplate(lang string, templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s-%s.tmpl", templateType, lang)
	tmplPath := fmt.Sprintf("templates/%s", tmplFile)
	tmpl, err := template.New(tmplFile).ParseFS(emailTemplates, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("getEmailTemplate: %w", err)
	}
	return tmpl, nil
}

// Collect data for the email template
func collectData(templateType string, data interface{}, translatedData *map[string]interface{}) {
	switch templateType {
	case RightsRequestTemplate:
		d := data.(RightsRequest)
		(*translatedData)["CreatorHandle"] = d.CreatorHandle
		(*translatedData)["Platform"] = d.Platform
		(*translatedData)["Permalink"] = d.Permalink
		(*translatedData)["Message"] = d.Message
		(*translatedData)["BrandName"] = d.BrandName
	case RightsResolvedTemplate:
		d := data.(RightsResolved)
		(*translatedData)["CreatorHandle"] = d.CreatorHandle
		(*translatedData)["Platform"] = d.Platform
		(*translatedData)["Permalink"] = d.Permalink
		(*translatedData)["Status"] = d.Status
	}
}

var emailSubjects = map[string]map[string]string{
	RightsRequestTemplate: {
		"en": "Permission to feature your post",
		"es": "Permiso para destacar tu publicación",
		"fr": "Autorisation de mettre en avant votre publication",
	},
	RightsResolvedTemplate: {
		"en": "Usage rights request resolved",
		"es": "Solicitud de derechos de uso resuelta",
		"fr": "Demande de droits d'utilisation résolue",
	},
}

// Return email subject
func getEmailSubject(lang string, from string) string {
	if subjects, ok := emailSubjects[from]; ok {
		if s, ok := subjects[lang]; ok {
			return s
		}
		return subjects["en"]
	}
	return ""
}
