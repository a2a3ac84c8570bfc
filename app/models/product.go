package models

import (
	"github.com/shopspring/decimal"
)

// DefaultDiscountLabelColor is applied when a product is created without an
// explicit discount label color.
const DefaultDiscountLabelColor = "#dc2626"

type Product struct {
	ID                      int               `json:"id"`
	Name                    string            `json:"name"`
	Slug                    string            `json:"slug"`
	Description             string            `json:"description"`
	ShortDescription        string            `json:"shortDescription"`
	Specs                   map[string]string `json:"specs"`
	CategoryID              int               `json:"categoryId"`
	ImageURL                string            `json:"imageUrl"`
	ImageURLs               []string          `json:"imageUrls"`
	SourceURL               *string           `json:"sourceUrl"`
	Brand                   string            `json:"brand"`
	BrandLogoURL            *string           `json:"brandLogoUrl"`
	AuthorizedDealerLogoURL *string           `json:"authorizedDealerLogoUrl"`
	WarrantyPeriod          *string           `json:"warrantyPeriod"`
	TechnicalServiceLogoURL *string           `json:"technicalServiceLogoUrl"`
	AuthorizedDealerURL     *string           `json:"authorizedDealerUrl"`
	TechnicalServiceURL     *string           `json:"technicalServiceUrl"`
	DiscountLabelColor      string            `json:"discountLabelColor"`
	Price                   decimal.Decimal   `json:"price"`
	DiscountedPrice         *decimal.Decimal  `json:"discountedPrice"`
	Featured                bool              `json:"featured"`
	SeoTitle                *string           `json:"seoTitle"`
	SeoDescription          *string           `json:"seoDescription"`
}

// InsertProduct is the accepted payload for creating a product. Prices arrive
// as decimal strings so currency values never pass through floats.
type InsertProduct struct {
	Name                    string            `json:"name" validate:"required"`
	Slug                    string            `json:"slug" validate:"required"`
	Description             string            `json:"description" validate:"required"`
	ShortDescription        string            `json:"shortDescription" validate:"required"`
	Specs                   map[string]string `json:"specs"`
	CategoryID              int               `json:"categoryId" validate:"required"`
	ImageURL                string            `json:"imageUrl" validate:"required"`
	ImageURLs               []string          `json:"imageUrls"`
	SourceURL               *string           `json:"sourceUrl"`
	Brand                   string            `json:"brand" validate:"required"`
	BrandLogoURL            *string           `json:"brandLogoUrl"`
	AuthorizedDealerLogoURL *string           `json:"authorizedDealerLogoUrl"`
	WarrantyPeriod          *string           `json:"warrantyPeriod"`
	TechnicalServiceLogoURL *string           `json:"technicalServiceLogoUrl"`
	AuthorizedDealerURL     *string           `json:"authorizedDealerUrl"`
	TechnicalServiceURL     *string           `json:"technicalServiceUrl"`
	DiscountLabelColor      string            `json:"discountLabelColor"`
	Price                   decimal.Decimal   `json:"price"`
	DiscountedPrice         *decimal.Decimal  `json:"discountedPrice"`
	Featured                bool              `json:"featured"`
	SeoTitle                *string           `json:"seoTitle"`
	SeoDescription          *string           `json:"seoDescription"`
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched; a supplied field replaces the stored value wholesale. Nullable
// fields cannot be reset to null through a patch.
type ProductPatch struct {
	Name                    *string           `json:"name"`
	Slug                    *string           `json:"slug"`
	Description             *string           `json:"description"`
	ShortDescription        *string           `json:"shortDescription"`
	Specs                   map[string]string `json:"specs"`
	CategoryID              *int              `json:"categoryId"`
	ImageURL                *string           `json:"imageUrl"`
	ImageURLs               []string          `json:"imageUrls"`
	SourceURL               *string           `json:"sourceUrl"`
	Brand                   *string           `json:"brand"`
	BrandLogoURL            *string           `json:"brandLogoUrl"`
	AuthorizedDealerLogoURL *string           `json:"authorizedDealerLogoUrl"`
	WarrantyPeriod          *string           `json:"warrantyPeriod"`
	TechnicalServiceLogoURL *string           `json:"technicalServiceLogoUrl"`
	AuthorizedDealerURL     *string           `json:"authorizedDealerUrl"`
	TechnicalServiceURL     *string           `json:"technicalServiceUrl"`
	DiscountLabelColor      *string           `json:"discountLabelColor"`
	Price                   *decimal.Decimal  `json:"price"`
	DiscountedPrice         *decimal.Decimal  `json:"discountedPrice"`
	Featured                *bool             `json:"featured"`
	SeoTitle                *string           `json:"seoTitle"`
	SeoDescription          *string           `json:"seoDescription"`
}

// Apply merges the patch over an existing product, field by field.
func (p *ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Slug != nil {
		product.Slug = *p.Slug
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.ShortDescription != nil {
		product.ShortDescription = *p.ShortDescription
	}
	if p.Specs != nil {
		product.Specs = p.Specs
	}
	if p.CategoryID != nil {
		product.CategoryID = *p.CategoryID
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.ImageURLs != nil {
		product.ImageURLs = p.ImageURLs
	}
	if p.SourceURL != nil {
		product.SourceURL = p.SourceURL
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.BrandLogoURL != nil {
		product.BrandLogoURL = p.BrandLogoURL
	}
	if p.WarrantyPeriod != nil {
		product.WarrantyPeriod = p.WarrantyPeriod
	}
	if p.AuthorizedDealerLogoURL != nil {
		product.AuthorizedDealerLogoURL = p.AuthorizedDealerLogoURL
	}
	if p.TechnicalServiceLogoURL != nil {
		product.TechnicalServiceLogoURL = p.TechnicalServiceLogoURL
	}
	if p.AuthorizedDealerURL != nil {
		product.AuthorizedDealerURL = p.AuthorizedDealerURL
	}
	if p.TechnicalServiceURL != nil {
		product.TechnicalServiceURL = p.TechnicalServiceURL
	}
	if p.DiscountLabelColor != nil {
		product.DiscountLabelColor = *p.DiscountLabelColor
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.DiscountedPrice != nil {
		product.DiscountedPrice = p.DiscountedPrice
	}
	if p.Featured != nil {
		product.Featured = *p.Featured
	}
	if p.SeoTitle != nil {
		product.SeoTitle = p.SeoTitle
	}
	if p.SeoDescription != nil {
		product.SeoDescription = p.SeoDescription
	}
}
