package persist_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/persist"
)

var _ = Describe("EncodeYAML and DecodeYAML", func() {
	It("round-trips a document through YAML encode then decode", func() {
		doc := sampleDoc()
		text, err := persist.EncodeYAML(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring("version:"))

		decoded, err := persist.DecodeYAML(text)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.LogicItems).To(HaveLen(1))
		Expect(decoded.WireSegments).To(HaveLen(1))
		Expect(decoded.SimulationConfig.SimulationTimeRateNS).To(Equal(int64(500)))
	})

	It("upgrades a version 100 YAML fixture in memory", func() {
		doc := sampleDoc()
		doc.Version = 100
		doc.SimulationConfig = persist.SimulationConfig{}
		text, err := persist.EncodeYAML(doc)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := persist.DecodeYAML(text)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Version).To(Equal(persist.CurrentVersion))
		Expect(decoded.SimulationConfig.SimulationTimeRateNS).To(Equal(int64(1000)))
	})

	It("rejects YAML with an unsupported version", func() {
		doc := sampleDoc()
		doc.Version = 9999
		text, err := persist.EncodeYAML(doc)
		Expect(err).NotTo(HaveOccurred())

		_, err = persist.DecodeYAML(text)
		Expect(err).To(HaveOccurred())
		Expect(err.(*persist.LoadError).Kind).To(Equal(persist.ErrJSONVersion))
	})
})

var _ = Describe("LoadExample", func() {
	It("decodes every embedded example circuit without error", func() {
		for i := 0; i < persist.ExampleCount(); i++ {
			doc, err := persist.LoadExample(i)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc).NotTo(BeNil())
		}
	})

	It("rejects an out-of-range example index", func() {
		_, err := persist.LoadExample(persist.ExampleCount())
		Expect(err).To(HaveOccurred())
	})
})
