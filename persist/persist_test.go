package persist_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/persist"
)

func sampleDoc() *persist.Document {
	return &persist.Document{
		Version:      persist.CurrentVersion,
		SavePosition: persist.SavePoint{X: 1, Y: 2},
		ViewConfig:   persist.ViewConfig{OffsetX: 1, OffsetY: 2, DeviceScale: 1.5},
		SimulationConfig: persist.SimulationConfig{
			SimulationTimeRateNS: 500,
			UseWireDelay:         true,
		},
		LogicItems: []persist.LogicItemRecord{
			{
				Type: 0, InputCount: 2, OutputCount: 1,
				Position:        persist.SavePoint{X: 0, Y: 0},
				InputInverters:  []bool{false, false},
				OutputInverters: []bool{false},
			},
		},
		Decorations: []persist.DecorationRecord{
			{Type: 0, Text: "hello", Width: 4, Height: 2, Position: persist.SavePoint{X: 3, Y: 3}},
		},
		WireSegments: []persist.WireSegmentRecord{
			{WireID: 0, P0: persist.SavePoint{X: 0, Y: 0}, P1: persist.SavePoint{X: 4, Y: 0}},
		},
	}
}

var _ = Describe("Encode/Decode", func() {
	It("round-trips a document through encode then decode", func() {
		doc := sampleDoc()
		payload, err := persist.Encode(doc)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := persist.Decode(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.LogicItems).To(HaveLen(1))
		Expect(decoded.Decorations).To(HaveLen(1))
		Expect(decoded.WireSegments).To(HaveLen(1))
		Expect(decoded.SimulationConfig.SimulationTimeRateNS).To(Equal(int64(500)))
	})

	It("upgrades a version 100 document to 200 in memory with wire delay disabled", func() {
		doc := sampleDoc()
		doc.Version = 100
		doc.SimulationConfig = persist.SimulationConfig{}
		payload, err := persist.Encode(doc)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := persist.Decode(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Version).To(Equal(persist.CurrentVersion))
		Expect(decoded.SimulationConfig).To(Equal(persist.SimulationConfig{SimulationTimeRateNS: 1000, UseWireDelay: false}))
	})

	It("rejects an unsupported version with ErrJSONVersion", func() {
		doc := sampleDoc()
		doc.Version = 9999
		payload, err := persist.Encode(doc)
		Expect(err).NotTo(HaveOccurred())

		_, err = persist.Decode(payload)
		var loadErr *persist.LoadError
		Expect(err).To(BeAssignableToTypeOf(loadErr))
		Expect(err.(*persist.LoadError).Kind).To(Equal(persist.ErrJSONVersion))
		Expect(err.(*persist.LoadError).Expected).To(Equal(persist.CurrentVersion))
		Expect(err.(*persist.LoadError).Actual).To(Equal(9999))
	})

	It("tags an unparsable Base64 payload with ErrBase64Decode", func() {
		_, err := persist.Decode("not valid base64 !!!")
		Expect(err).To(HaveOccurred())
		Expect(err.(*persist.LoadError).Kind).To(Equal(persist.ErrBase64Decode))
	})

	It("tags a valid Base64 payload that isn't gzip with ErrGzipDecompress", func() {
		_, err := persist.Decode("aGVsbG8=")
		Expect(err).To(HaveOccurred())
		Expect(err.(*persist.LoadError).Kind).To(Equal(persist.ErrGzipDecompress))
	})
})

var _ = Describe("HumanizeKind and HumanizeLoadErrorKind", func() {
	It("title-cases an underscored error kind name", func() {
		Expect(persist.HumanizeLoadErrorKind(persist.ErrGzipDecompress)).To(Equal("Gzip Decompress Error"))
	})
})
