package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
	"github.com/oleocontrol/oleocontrol/internal/oil"
	oilPostgres "github.com/oleocontrol/oleocontrol/internal/oil/postgres"
)

func TestOilPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Oil Postgres Suite")
}

// SQLiteOil mirrors the oils table without Postgres column types.
type SQLiteOil struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;not null"`
	PhotoURL    string          `gorm:"column:photo_url"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (SQLiteOil) TableName() string {
	return "oils"
}

var _ = Describe("Oil Repository", func() {
	var (
		db   *gorm.DB
		repo oil.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteOil{})
		Expect(err).NotTo(HaveOccurred())

		repo = oilPostgres.NewRepository(db)
	})

	Describe("Create", func() {
		It("persists an oil and assigns an id", func() {
			o := &oilDatamodel.Oil{
				Name:        "Picual",
				Description: "Aceite de oliva virgen extra",
				Price:       decimal.RequireFromString("4.25"),
			}

			Expect(repo.Create(o)).To(Succeed())
			Expect(o.ID).To(BeNumerically(">", 0))
			Expect(o.CreatedAt).NotTo(BeZero())
		})
	})

	Describe("GetAll", func() {
		BeforeEach(func() {
			for _, name := range []string{"Picual", "Arbequina", "Cornicabra"} {
				Expect(repo.Create(&oilDatamodel.Oil{
					Name:  name,
					Price: decimal.RequireFromString("3.90"),
				})).To(Succeed())
			}
		})

		It("returns oils in id order", func() {
			oils, err := repo.GetAll(20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(oils).To(HaveLen(3))
			Expect(oils[0].Name).To(Equal("Picual"))
			Expect(oils[2].Name).To(Equal("Cornicabra"))
		})

		It("applies limit and offset", func() {
			oils, err := repo.GetAll(1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(oils).To(HaveLen(1))
			Expect(oils[0].Name).To(Equal("Arbequina"))
		})
	})

	Describe("GetByID", func() {
		It("round-trips the decimal price", func() {
			o := &oilDatamodel.Oil{Name: "Picual", Price: decimal.RequireFromString("4.25")}
			Expect(repo.Create(o)).To(Succeed())

			fetched, err := repo.GetByID(o.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Price.Equal(decimal.RequireFromString("4.25"))).To(BeTrue())
		})

		It("errors for an unknown id", func() {
			_, err := repo.GetByID(999)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("saves amended fields", func() {
			o := &oilDatamodel.Oil{Name: "Picual", Price: decimal.RequireFromString("4.25")}
			Expect(repo.Create(o)).To(Succeed())

			o.Price = decimal.RequireFromString("4.50")
			Expect(repo.Update(o)).To(Succeed())

			fetched, err := repo.GetByID(o.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Price.Equal(decimal.RequireFromString("4.50"))).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("removes the row", func() {
			o := &oilDatamodel.Oil{Name: "Picual", Price: decimal.RequireFromString("4.25")}
			Expect(repo.Create(o)).To(Succeed())

			Expect(repo.Delete(o.ID)).To(Succeed())
			_, err := repo.GetByID(o.ID)
			Expect(err).To(HaveOccurred())
		})
	})
})
