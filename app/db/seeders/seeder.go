package seeders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/onsal/elektronik-storefront/app/models"
	"github.com/onsal/elektronik-storefront/app/repositories"
)

// SeedDemo loads a handful of demo products and banners so a fresh instance
// has something to show. Enabled with SEED_DEMO=true; the default categories
// are always present regardless.
func SeedDemo(
	ctx context.Context,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	bannerRepo repositories.BannerRepositoryImpl,
) error {
	camasir, err := categoryRepo.GetBySlug(ctx, "camasir-makineleri")
	if err != nil {
		return fmt.Errorf("seed demo: kategori sorgusu başarısız: %w", err)
	}
	televizyon, err := categoryRepo.GetBySlug(ctx, "televizyon")
	if err != nil {
		return fmt.Errorf("seed demo: kategori sorgusu başarısız: %w", err)
	}
	if camasir == nil || televizyon == nil {
		return fmt.Errorf("seed demo: varsayılan kategoriler bulunamadı")
	}

	discounted := decimal.NewFromInt(15999)
	warranty := "3 Yıl"
	if _, err := productRepo.Create(ctx, &models.InsertProduct{
		Name:             "Arçelik 9123 YK Kurutmalı Çamaşır Makinesi",
		Slug:             "arcelik-9123-yk-kurutmali-camasir-makinesi",
		Description:      "9 kg yıkama, 6 kg kurutma kapasiteli, A enerji sınıfı kurutmalı çamaşır makinesi.",
		ShortDescription: "9/6 kg kurutmalı çamaşır makinesi",
		Specs: map[string]string{
			"Yıkama Kapasitesi":  "9 kg",
			"Kurutma Kapasitesi": "6 kg",
			"Enerji Sınıfı":      "A",
			"Devir":              "1200 devir/dk",
		},
		CategoryID:      camasir.ID,
		ImageURL:        "/uploads/demo-arcelik-9123.jpg",
		Brand:           "Arçelik",
		WarrantyPeriod:  &warranty,
		Price:           decimal.NewFromInt(17499),
		DiscountedPrice: &discounted,
		Featured:        true,
	}); err != nil {
		return fmt.Errorf("seed demo: ürün eklenemedi: %w", err)
	}

	if _, err := productRepo.Create(ctx, &models.InsertProduct{
		Name:             "Samsung 55Q70D QLED 4K Televizyon",
		Slug:             "samsung-55q70d-qled-4k-televizyon",
		Description:      "55 inç QLED panel, 4K çözünürlük, 120 Hz yenileme hızı.",
		ShortDescription: "55 inç QLED 4K TV",
		Specs: map[string]string{
			"Ekran Boyutu": "55 inç",
			"Çözünürlük":   "3840x2160",
			"Panel":        "QLED",
		},
		CategoryID: televizyon.ID,
		ImageURL:   "/uploads/demo-samsung-55q70d.jpg",
		Brand:      "Samsung",
		Price:      decimal.NewFromInt(32999),
	}); err != nil {
		return fmt.Errorf("seed demo: ürün eklenemedi: %w", err)
	}

	if _, err := bannerRepo.Create(ctx, &models.InsertBanner{
		Title:       "Beyaz Eşyada Sezon İndirimi",
		Description: "Seçili çamaşır ve bulaşık makinelerinde kaçırılmayacak fiyatlar.",
		ImageURL:    "/uploads/demo-banner-beyaz-esya.jpg",
		Order:       1,
	}); err != nil {
		return fmt.Errorf("seed demo: banner eklenemedi: %w", err)
	}
	if _, err := bannerRepo.Create(ctx, &models.InsertBanner{
		Title:       "Televizyonda Teknoloji Günleri",
		Description: "QLED ve OLED modellerde avantajlı fiyatlar.",
		ImageURL:    "/uploads/demo-banner-televizyon.jpg",
		Order:       2,
		CategoryID:  &televizyon.ID,
	}); err != nil {
		return fmt.Errorf("seed demo: banner eklenemedi: %w", err)
	}

	return nil
}
