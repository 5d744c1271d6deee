package configs

import (
	"log"
	"math/rand"
	"time"

	"github.com/gislivinna-utsalapp/utsalapp/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

type demoStore struct {
	email    string
	password string
	name     string
	desc     string
	address  string
	phone    string
	website  string
}

type demoPost struct {
	store         int
	title         string
	desc          string
	category      string
	priceOriginal float64
	priceSale     float64
	imageURL      string
	imageAlt      string
}

// SeedDemo loads the demo stores and sale posts shipped with the app.
// Skipped entirely when any demo account already exists.
func SeedDemo() error {
	db := DB()

	demoStores := []demoStore{
		{"litabudin@example.is", "store123", "LitaBúðin", "Falleg og litrík föt fyrir alla fjölskylduna", "Laugavegur 45, 101 Reykjavík", "581-2345", "https://litabudin.is"},
		{"gaedaskor@example.is", "store123", "GæðaSkór", "Vandaður skófatnaður fyrir alla", "Kringlan 4-12, 103 Reykjavík", "568-9876", "https://gaedaskor.is"},
		{"heima@example.is", "store123", "Heima&Heilsa", "Húsgögn og heilsuvörur", "Smáralind, 201 Kópavogur", "554-3210", "https://heimaheilsa.is"},
	}

	var count int64
	db.Model(&entity.User{}).Where("email IN ?", []string{demoStores[0].email, demoStores[1].email, demoStores[2].email}).Count(&count)
	if count > 0 {
		log.Println("demo data already exists")
		return nil
	}

	stores := make([]entity.Store, 0, len(demoStores))
	for _, d := range demoStores {
		hash, _ := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		user := entity.User{Email: d.email, PasswordHash: string(hash), Role: entity.RoleStore}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		store := entity.Store{
			Name:        d.name,
			Description: d.desc,
			Address:     d.address,
			Phone:       d.phone,
			Website:     d.website,
			OwnerUserID: user.ID,
		}
		if err := db.Create(&store).Error; err != nil {
			return err
		}
		stores = append(stores, store)
	}

	demoPosts := []demoPost{
		{0, "Sumarútsala - Kjólar", "Fallegir sumarkjólar með allt að 50% afslætti. Margir litir og stærðir í boði.", entity.CategoryFatnad, 12990, 6490, "/placeholder-dress.jpg", "Sumarkjóll"},
		{0, "Barnafatnaður - 40% afsláttur", "Allur barnafatnaður með 40% afslætti í takmarkaðan tíma.", entity.CategoryFatnad, 5990, 3590, "/placeholder-kids.jpg", "Barnafatnaður"},
		{0, "Úlpur og jakkar", "Vetrarvörur á frábæru verði. Hlýir og fallegir.", entity.CategoryFatnad, 24990, 14990, "/placeholder-jacket.jpg", "Úlpur"},
		{1, "Leðurskór - 35% afsláttur", "Vandaðir leðurskór fyrir konur og karla. Margir stílar.", entity.CategoryFatnad, 19990, 12990, "/placeholder-shoes.jpg", "Leðurskór"},
		{1, "Íþróttaskór á tilboði", "Hlaupaskór og þjálfunarskór frá fremstu framleiðendum.", entity.CategoryFatnad, 14990, 9990, "/placeholder-sneakers.jpg", "Íþróttaskór"},
		{2, "Sófasett - 30% afsláttur", "Þægileg 3ja sæta sófasett með hægindastól. Margir litir.", entity.CategoryHusgogn, 189990, 132990, "/placeholder-sofa.jpg", "Sófasett"},
		{2, "Matborðssett", "Fallegt matborð með 6 stólum. Úr eik.", entity.CategoryHusgogn, 149990, 99990, "/placeholder-table.jpg", "Matborð"},
		{2, "Rúm og dýnur", "Heilsurúm með dýnu og kodda. Margar stærðir.", entity.CategoryHusgogn, 129990, 89990, "/placeholder-bed.jpg", "Rúm"},
	}

	now := time.Now()
	weekLater := now.Add(7 * 24 * time.Hour)
	monthLater := now.Add(30 * 24 * time.Hour)

	for _, d := range demoPosts {
		endsAt := weekLater
		if rand.Intn(2) == 0 {
			endsAt = monthLater
		}
		post := entity.SalePost{
			Title:         d.title,
			Description:   d.desc,
			Category:      d.category,
			PriceOriginal: d.priceOriginal,
			PriceSale:     d.priceSale,
			StartsAt:      now,
			EndsAt:        endsAt,
			IsActive:      true,
			StoreID:       stores[d.store].ID,
		}
		if err := db.Create(&post).Error; err != nil {
			return err
		}
		img := entity.Image{SalePostID: post.ID, URL: d.imageURL, Alt: d.imageAlt}
		if err := db.Create(&img).Error; err != nil {
			return err
		}

		views := rand.Intn(100) + 10
		for i := 0; i < views; i++ {
			ev := entity.ViewEvent{SalePostID: post.ID, ViewedAt: now}
			if err := db.Create(&ev).Error; err != nil {
				return err
			}
		}
	}

	log.Println("demo data seeded")
	return nil
}
