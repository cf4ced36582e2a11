package main_test

import (
	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())

		err = doc.Validate(loader.Context)
		Expect(err).NotTo(HaveOccurred())
	})

	It("describes the public oil catalogue", func() {
		Expect(doc.Paths.Find("/oils")).NotTo(BeNil())
		Expect(doc.Paths.Find("/oils/{id}")).NotTo(BeNil())
	})

	It("describes the member sub-resources", func() {
		for _, p := range []string{
			"/members/{id}/entries",
			"/members/{id}/analyses",
			"/members/{id}/settlements",
			"/members/{id}/oil-inventories",
			"/members/{id}/oil-inventories/summary",
			"/members/{id}/oil-settlements",
			"/members/{id}/oil-settlements/summary",
		} {
			Expect(doc.Paths.Find(p)).NotTo(BeNil(), p)
		}
	})

	It("declares the bearer security scheme", func() {
		Expect(doc.Components.SecuritySchemes).To(HaveKey("bearerAuth"))
	})
})
