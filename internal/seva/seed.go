package seva

import (
	"log"

	"gorm.io/gorm"
)

const (
	demoTempleEn   = "Shree Kshetra Ramtirtha"
	demoTempleKn   = "ಶ್ರೀ ಕ್ಷೇತ್ರ ರಾಮತೀರ್ಥ"
	demoLocationEn = "Karnataka"
	demoLocationKn = "ಕರ್ನಾಟಕ"
)

// DemoCatalog is the starter set of sevas for a fresh install.
func DemoCatalog() []Seva {
	sevas := []Seva{
		{TitleEn: "Rudra Abhisheka", TitleKn: "ರುದ್ರ ಅಭಿಷೇಕ", Price: 350, Category: "Abhisheka", Image: "/images/hero-hampi.jpg",
			DescriptionEn: "Bathing the Shiva Linga with panchamrita and other sacred items while chanting the Rudram."},
		{TitleEn: "Mahalakshmi Alankara", TitleKn: "ಮಹಾಲಕ್ಷ್ಮಿ ಅಲಂಕಾರ", Price: 1500, Category: "Special Pooja", Image: "/images/hero-mysore.jpg",
			DescriptionEn: "Special Alankara seva for Goddess Mahalakshmi."},
		{TitleEn: "Sarva Seva", TitleKn: "ಸರ್ವ ಸೇವೆ", Price: 2001, Category: "Full Day", Image: "/images/hero-udupi.jpg",
			DescriptionEn: "All daily sevas performed for the deity."},
		{TitleEn: "Kalyanotsavam", TitleKn: "ಕಲ್ಯಾಣೋತ್ಸವ", Price: 2500, Category: "Kalyanam", Image: "/images/seva-kalyanam.jpg",
			DescriptionEn: "The marriage ceremony of the divine couple."},
		{TitleEn: "Maha Rudrabhishekam", TitleKn: "ಮಹಾ ರುದ್ರಾಭಿಷೇಕ", Price: 2100, Category: "Abhisheka", Image: "/images/seva-rudra.jpg",
			DescriptionEn: "Elaborate abhisheka with the full Rudram recitation."},
		{TitleEn: "Kumkumarchana", TitleKn: "ಕುಂಕುಮಾರ್ಚನೆ", Price: 500, Category: "Archana", Image: "/images/hero-udupi.jpg",
			DescriptionEn: "Archana performed with kumkuma to the Goddess."},
		{TitleEn: "Deeparadhana", TitleKn: "ದೀಪಾರಾಧನೆ", Price: 200, Category: "Aarti", Image: "/images/seva-aarti.jpg",
			DescriptionEn: "Morning or evening aarti."},
	}
	for i := range sevas {
		sevas[i].TempleNameEn = demoTempleEn
		sevas[i].TempleNameKn = demoTempleKn
		sevas[i].LocationEn = demoLocationEn
		sevas[i].LocationKn = demoLocationKn
		sevas[i].Slug = makeSlug(sevas[i].TitleEn, sevas[i].TitleKn)
		sevas[i].IsActive = true
	}
	return sevas
}

// SeedCatalog inserts the demo catalog when the sevas table is empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Seva{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sevas := DemoCatalog()
	if err := db.Create(&sevas).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d demo sevas", len(sevas))
	return nil
}
