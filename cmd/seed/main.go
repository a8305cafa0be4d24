package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aurea-joias/aurea-backend/config"
	"github.com/aurea-joias/aurea-backend/internal/app/model"
	"github.com/aurea-joias/aurea-backend/internal/db"
	"github.com/aurea-joias/aurea-backend/pkg/util"
	"gorm.io/gorm"
)

type seedProduct struct {
	Name        string
	Description string
	BasePrice   float64
	PromoPrice  *float64
	Category    string // category slug
	Featured    bool
	Attributes  []string // attribute values by name
	Images      []string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	gdb := db.GetDB()

	var productCount int64
	gdb.Model(&model.Product{}).Count(&productCount)
	if productCount > 0 {
		fmt.Printf("Database already contains %d products.\n", productCount)
		fmt.Print("Do you want to seed anyway? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Seed cancelled.")
			return
		}
	}

	if err := seedAdmin(gdb); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	categories, err := seedCategories(gdb)
	if err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	values, err := seedAttributes(gdb)
	if err != nil {
		log.Fatal("Failed to seed attributes:", err)
	}

	count, err := seedProducts(gdb, categories, values)
	if err != nil {
		log.Fatal("Failed to seed products:", err)
	}

	fmt.Printf("Seed completed: %d products created.\n", count)
}

func seedAdmin(gdb *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@aureajoias.com.br"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "Admin1234"
	}

	var existing model.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("Admin user already exists: %s\n", email)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}
	admin := model.User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		Role:         model.RoleAdmin,
		Profile:      &model.Profile{},
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return err
	}
	fmt.Printf("Admin user created: %s\n", email)
	return nil
}

// seedCategories builds the base catalog tree and returns categories by slug.
func seedCategories(gdb *gorm.DB) (map[string]model.Category, error) {
	tree := map[string][]string{
		"Anéis":     {"Anéis Solitários", "Anéis de Formatura"},
		"Colares":   {"Gargantilhas", "Correntes"},
		"Brincos":   {"Argolas", "Brincos de Pressão"},
		"Pulseiras": {},
		"Alianças":  {"Alianças de Ouro", "Alianças de Prata"},
	}
	roots := []string{"Anéis", "Colares", "Brincos", "Pulseiras", "Alianças"}

	byLeafSlug := make(map[string]model.Category)
	for _, rootName := range roots {
		root, err := findOrCreateCategory(gdb, rootName, nil, true)
		if err != nil {
			return nil, err
		}
		byLeafSlug[root.Slug] = root
		for _, childName := range tree[rootName] {
			child, err := findOrCreateCategory(gdb, childName, &root.ID, false)
			if err != nil {
				return nil, err
			}
			byLeafSlug[child.Slug] = child
		}
	}
	fmt.Printf("Categories ready: %d\n", len(byLeafSlug))
	return byLeafSlug, nil
}

func findOrCreateCategory(gdb *gorm.DB, name string, parentID *uint, showOnHome bool) (model.Category, error) {
	slug := util.Slugify(name)
	var existing model.Category
	err := gdb.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return model.Category{}, err
	}
	category := model.Category{
		Name:       name,
		Slug:       slug,
		ParentID:   parentID,
		ShowOnHome: showOnHome,
	}
	if err := gdb.Create(&category).Error; err != nil {
		return model.Category{}, err
	}
	return category, nil
}

// seedAttributes creates the filterable attribute types and returns values by name.
func seedAttributes(gdb *gorm.DB) (map[string]model.AttributeValue, error) {
	attributes := map[string][]string{
		"Material": {"Ouro 18k", "Ouro Branco", "Prata 925", "Ouro Rosé"},
		"Pedra":    {"Diamante", "Esmeralda", "Zircônia", "Sem Pedra"},
		"Aro":      {"14", "16", "18", "20", "22"},
	}

	byValue := make(map[string]model.AttributeValue)
	for name, valueNames := range attributes {
		slug := util.Slugify(name)
		var attribute model.ProductAttribute
		err := gdb.Where("slug = ?", slug).First(&attribute).Error
		if err == gorm.ErrRecordNotFound {
			attribute = model.ProductAttribute{Name: name, Slug: slug}
			if err := gdb.Create(&attribute).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		for _, valueName := range valueNames {
			var value model.AttributeValue
			err := gdb.Where("attribute_id = ? AND value = ?", attribute.ID, valueName).First(&value).Error
			if err == gorm.ErrRecordNotFound {
				value = model.AttributeValue{AttributeID: attribute.ID, Value: valueName}
				if err := gdb.Create(&value).Error; err != nil {
					return nil, err
				}
			} else if err != nil {
				return nil, err
			}
			byValue[valueName] = value
		}
	}
	fmt.Printf("Attribute values ready: %d\n", len(byValue))
	return byValue, nil
}

func seedProducts(gdb *gorm.DB, categories map[string]model.Category, values map[string]model.AttributeValue) (int, error) {
	created := 0
	for _, sp := range catalog() {
		slug := util.Slugify(sp.Name)
		var existing model.Product
		err := gdb.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}

		category, ok := categories[sp.Category]
		if !ok {
			return created, fmt.Errorf("unknown category slug: %s", sp.Category)
		}

		product := model.Product{
			Name:             sp.Name,
			Slug:             slug,
			Description:      sp.Description,
			BasePrice:        sp.BasePrice,
			PromotionalPrice: sp.PromoPrice,
			CategoryID:       category.ID,
			IsActive:         true,
			IsFeatured:       sp.Featured,
		}
		if err := gdb.Create(&product).Error; err != nil {
			return created, err
		}

		for i, url := range sp.Images {
			image := model.ProductImage{
				ProductID: product.ID,
				Image:     url,
				IsCover:   i == 0,
			}
			if err := gdb.Create(&image).Error; err != nil {
				return created, err
			}
		}

		var attrValues []model.AttributeValue
		for _, name := range sp.Attributes {
			value, ok := values[name]
			if !ok {
				return created, fmt.Errorf("unknown attribute value: %s", name)
			}
			attrValues = append(attrValues, value)
		}
		if len(attrValues) > 0 {
			if err := gdb.Model(&product).Association("Attributes").Replace(attrValues); err != nil {
				return created, err
			}
		}
		created++
	}
	return created, nil
}

func promo(v float64) *float64 { return &v }

func catalog() []seedProduct {
	return []seedProduct{
		{
			Name:        "Anel Solitário Clássico",
			Description: "Anel solitário em ouro 18k com diamante de 20 pontos, lapidação brilhante.",
			BasePrice:   4890.00,
			Category:    "aneis-solitarios",
			Featured:    true,
			Attributes:  []string{"Ouro 18k", "Diamante", "16"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/anel-solitario-classico.jpg"},
		},
		{
			Name:        "Anel Solitário Zircônia",
			Description: "Anel solitário em prata 925 com zircônia cravada em garras.",
			BasePrice:   389.90,
			PromoPrice:  promo(299.90),
			Category:    "aneis-solitarios",
			Attributes:  []string{"Prata 925", "Zircônia", "18"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/anel-solitario-zirconia.jpg"},
		},
		{
			Name:        "Anel de Formatura Direito",
			Description: "Anel de formatura em ouro 18k com pedra esmeralda, símbolo do curso em relevo.",
			BasePrice:   3250.00,
			Category:    "aneis-de-formatura",
			Attributes:  []string{"Ouro 18k", "Esmeralda", "20"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/anel-formatura-direito.jpg"},
		},
		{
			Name:        "Gargantilha Ponto de Luz",
			Description: "Gargantilha em ouro branco com ponto de luz em zircônia, 42cm.",
			BasePrice:   1190.00,
			PromoPrice:  promo(949.00),
			Category:    "gargantilhas",
			Featured:    true,
			Attributes:  []string{"Ouro Branco", "Zircônia"},
			Images: []string{
				"https://cdn.aureajoias.com.br/products/gargantilha-ponto-de-luz.jpg",
				"https://cdn.aureajoias.com.br/products/gargantilha-ponto-de-luz-2.jpg",
			},
		},
		{
			Name:        "Corrente Veneziana 60cm",
			Description: "Corrente veneziana masculina em prata 925, fecho lagosta.",
			BasePrice:   459.00,
			Category:    "correntes",
			Attributes:  []string{"Prata 925", "Sem Pedra"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/corrente-veneziana.jpg"},
		},
		{
			Name:        "Argola Média Tubular",
			Description: "Brinco de argola tubular em ouro 18k, diâmetro de 2,5cm.",
			BasePrice:   1890.00,
			Category:    "argolas",
			Featured:    true,
			Attributes:  []string{"Ouro 18k", "Sem Pedra"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/argola-media-tubular.jpg"},
		},
		{
			Name:        "Brinco de Pressão Esmeralda",
			Description: "Brinco de pressão em ouro rosé com esmeraldas naturais.",
			BasePrice:   2790.00,
			PromoPrice:  promo(2490.00),
			Category:    "brincos-de-pressao",
			Attributes:  []string{"Ouro Rosé", "Esmeralda"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/brinco-pressao-esmeralda.jpg"},
		},
		{
			Name:        "Pulseira Riviera Zircônia",
			Description: "Pulseira riviera em prata 925 com zircônias brancas, 18cm.",
			BasePrice:   549.90,
			Category:    "pulseiras",
			Attributes:  []string{"Prata 925", "Zircônia"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/pulseira-riviera.jpg"},
		},
		{
			Name:        "Aliança de Ouro Tradicional 4mm",
			Description: "Par de alianças em ouro 18k, perfil abaulado, 4mm de largura.",
			BasePrice:   3890.00,
			Category:    "aliancas-de-ouro",
			Featured:    true,
			Attributes:  []string{"Ouro 18k", "Sem Pedra", "18"},
			Images: []string{
				"https://cdn.aureajoias.com.br/products/alianca-ouro-tradicional.jpg",
				"https://cdn.aureajoias.com.br/products/alianca-ouro-tradicional-2.jpg",
			},
		},
		{
			Name:        "Aliança de Prata Anatômica",
			Description: "Par de alianças em prata 925, perfil anatômico, acabamento fosco.",
			BasePrice:   329.00,
			PromoPrice:  promo(279.00),
			Category:    "aliancas-de-prata",
			Attributes:  []string{"Prata 925", "Sem Pedra", "20"},
			Images:      []string{"https://cdn.aureajoias.com.br/products/alianca-prata-anatomica.jpg"},
		},
	}
}
