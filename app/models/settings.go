package models

// SiteSettings is a singleton record (id fixed at 1) holding company
// identity, contact info, social links and SEO meta defaults. Updates replace
// the record wholesale.
type SiteSettings struct {
	ID                  int     `json:"id,omitempty"`
	Logo                string  `json:"logo"`
	Favicon             string  `json:"favicon"`
	CompanyName         string  `json:"companyName"`
	Address             string  `json:"address"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	Whatsapp            *string `json:"whatsapp"`
	WhatsappButtonText  string  `json:"whatsappButtonText"`
	CallButtonText      string  `json:"callButtonText"`
	InstagramButtonText string  `json:"instagramButtonText"`
	MapsEmbed           *string `json:"mapsEmbed"`
	Facebook            *string `json:"facebook"`
	Twitter             *string `json:"twitter"`
	Instagram           *string `json:"instagram"`
	Linkedin            *string `json:"linkedin"`
	AboutUs             string  `json:"aboutUs"`
	MetaTitle           string  `json:"metaTitle"`
	MetaDescription     string  `json:"metaDescription"`
}

type InsertSiteSettings struct {
	Logo                string  `json:"logo" validate:"required"`
	Favicon             string  `json:"favicon" validate:"required"`
	CompanyName         string  `json:"companyName" validate:"required"`
	Address             string  `json:"address" validate:"required"`
	Phone               string  `json:"phone" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	Whatsapp            *string `json:"whatsapp"`
	WhatsappButtonText  string  `json:"whatsappButtonText"`
	CallButtonText      string  `json:"callButtonText"`
	InstagramButtonText string  `json:"instagramButtonText"`
	MapsEmbed           *string `json:"mapsEmbed"`
	Facebook            *string `json:"facebook"`
	Twitter             *string `json:"twitter"`
	Instagram           *string `json:"instagram"`
	Linkedin            *string `json:"linkedin"`
	AboutUs             string  `json:"aboutUs" validate:"required"`
	MetaTitle           string  `json:"metaTitle" validate:"required"`
	MetaDescription     string  `json:"metaDescription" validate:"required"`
}

// DefaultSiteSettings is what the public API serves before an admin has ever
// configured the site, so the storefront never sees an empty response.
func DefaultSiteSettings() SiteSettings {
	whatsapp := "+90 555 123 45 67"
	return SiteSettings{
		Logo:                "/logo.svg",
		Favicon:             "/favicon.svg",
		CompanyName:         "Elektronik & Beyaz Eşya",
		Address:             "İstanbul, Türkiye",
		Phone:               "+90 (212) 123 45 67",
		Email:               "info@example.com",
		Whatsapp:            &whatsapp,
		WhatsappButtonText:  "Bilgi Al",
		CallButtonText:      "Ara",
		InstagramButtonText: "Takip Et",
		AboutUs:             "Kaliteli beyaz eşya ve elektronik ürünleri uygun fiyatlarla sunuyoruz.",
		MetaTitle:           "Elektronik & Beyaz Eşya",
		MetaDescription:     "Kaliteli beyaz eşya, televizyon ve küçük ev aletleri",
	}
}
