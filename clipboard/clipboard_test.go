package clipboard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/editcircuit/clipboard"
	"github.com/logiksim/editcircuit/persist"
)

func samplePayload() *clipboard.Payload {
	return &clipboard.Payload{
		Version: persist.CurrentVersion,
		LogicItems: []persist.LogicItemRecord{
			{Type: 0, InputCount: 1, OutputCount: 1, InputInverters: []bool{false}, OutputInverters: []bool{false}},
		},
	}
}

var _ = Describe("Encode and Decode", func() {
	It("round-trips a payload through encode then decode", func() {
		p := samplePayload()
		text, err := clipboard.Encode(p)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := clipboard.Decode(text)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.LogicItems).To(HaveLen(1))
	})

	It("reports a foreign clipboard payload as ErrBase64Decode", func() {
		_, err := clipboard.Decode("plain text copied from elsewhere")
		Expect(err).To(HaveOccurred())
		Expect(err.(*persist.LoadError).Kind).To(Equal(persist.ErrBase64Decode))
	})
})

var _ = Describe("FromDocument and ToDocument", func() {
	It("strips view and simulation fields off a document", func() {
		doc := &persist.Document{
			Version:      persist.CurrentVersion,
			ViewConfig:   persist.ViewConfig{OffsetX: 5},
			LogicItems:   samplePayload().LogicItems,
			Decorations:  nil,
			WireSegments: nil,
		}
		p := clipboard.FromDocument(doc)
		Expect(p.LogicItems).To(HaveLen(1))
		Expect(p.Version).To(Equal(persist.CurrentVersion))
	})

	It("fills stripped fields with defaults when expanding back to a document", func() {
		p := samplePayload()
		doc := p.ToDocument()
		Expect(doc.ViewConfig.DeviceScale).To(Equal(1.0))
		Expect(doc.SimulationConfig.SimulationTimeRateNS).To(Equal(int64(1000)))
		Expect(doc.LogicItems).To(HaveLen(1))
	})
})
