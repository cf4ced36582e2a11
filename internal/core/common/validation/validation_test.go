package validation_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/oleocontrol/oleocontrol/internal/core/common/validation"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

var _ = Describe("ValidDNI", func() {
	It("accepts a correct DNI", func() {
		// 12345678 mod 23 = 14 -> Z
		Expect(validation.ValidDNI("12345678Z")).To(BeTrue())
		Expect(validation.ValidDNI("00000000T")).To(BeTrue())
	})

	It("accepts a lowercase control letter", func() {
		Expect(validation.ValidDNI("12345678z")).To(BeTrue())
	})

	It("rejects a wrong control letter", func() {
		Expect(validation.ValidDNI("12345678A")).To(BeFalse())
	})

	It("rejects malformed values", func() {
		Expect(validation.ValidDNI("1234567Z")).To(BeFalse())
		Expect(validation.ValidDNI("123456789Z")).To(BeFalse())
		Expect(validation.ValidDNI("ABCDEFGHZ")).To(BeFalse())
		Expect(validation.ValidDNI("")).To(BeFalse())
	})
})

var _ = Describe("ValidationBuilder", func() {
	It("returns nil when every rule passes", func() {
		v := validation.NewValidator()
		v.Field("username", "pepe").Required().MinLength(3)
		v.Field("email", "pepe@example.com").Required().Email()
		Expect(v.Validate()).To(BeNil())
	})

	It("reports the first failing rule per field", func() {
		v := validation.NewValidator()
		v.Field("username", "").Required().MinLength(3)
		err := v.Validate()
		Expect(err).NotTo(BeNil())
		Expect(err.StatusCode).To(Equal(422))
		Expect(err.Fields).To(HaveKey("username"))
		Expect(err.Fields["username"]).To(ContainSubstring("obligatorio"))
	})

	It("validates fields independently", func() {
		v := validation.NewValidator()
		v.Field("username", "").Required()
		v.Field("email", "not-an-email").Email()
		err := v.Validate()
		Expect(err).NotTo(BeNil())
		Expect(err.Fields).To(HaveLen(2))
	})

	Describe("RangeDecimal", func() {
		check := func(value string) map[string]string {
			v := validation.NewValidator()
			v.Field("acidity", decimal.RequireFromString(value)).
				RangeDecimal(decimal.Zero, decimal.NewFromInt(100))
			if err := v.Validate(); err != nil {
				return err.Fields
			}
			return nil
		}

		It("accepts the bounds", func() {
			Expect(check("0")).To(BeNil())
			Expect(check("100")).To(BeNil())
			Expect(check("42.75")).To(BeNil())
		})

		It("rejects values just outside the bounds", func() {
			Expect(check("-0.01")).To(HaveKey("acidity"))
			Expect(check("100.01")).To(HaveKey("acidity"))
		})
	})

	Describe("MinDecimal", func() {
		It("rejects quantities below the minimum", func() {
			v := validation.NewValidator()
			v.Field("olive_quantity", decimal.RequireFromString("0.999")).
				MinDecimal(decimal.NewFromInt(1))
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(err.Fields).To(HaveKey("olive_quantity"))
		})

		It("accepts the minimum itself", func() {
			v := validation.NewValidator()
			v.Field("olive_quantity", decimal.NewFromInt(1)).
				MinDecimal(decimal.NewFromInt(1))
			Expect(v.Validate()).To(BeNil())
		})

		It("passes nil pointer decimals through", func() {
			v := validation.NewValidator()
			var q *decimal.Decimal
			v.Field("oil_quantity", q).MinDecimal(decimal.Zero)
			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("OneOf", func() {
		It("rejects values outside the set", func() {
			v := validation.NewValidator()
			v.Field("settlement_status", "Resolved").OneOf("Pending", "Accepted", "Cancelled")
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(err.Fields).To(HaveKey("settlement_status"))
		})

		It("lets empty strings compose with optional fields", func() {
			v := validation.NewValidator()
			v.Field("settlement_status", "").OneOf("Pending", "Accepted", "Cancelled")
			Expect(v.Validate()).To(BeNil())
		})
	})
})

var _ = Describe("NormalizeDNI", func() {
	It("upper-cases the control letter", func() {
		Expect(validation.NormalizeDNI("12345678z")).To(Equal("12345678Z"))
	})
})
