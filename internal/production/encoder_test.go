package production

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/comalice/turingx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
)

var _ = Describe("Encoders", func() {
	var trace Trace

	BeforeEach(func() {
		rec := NewTraceRecorder(0)
		m := turingx.NewMachine(incrementTable,
			turingx.WithFinal("qf"),
			turingx.WithID("enc"),
			turingx.WithObserver(rec),
		)
		m.Load("101")
		rec.Begin(m, "101")
		rec.Finish(m.RunDefault())
		trace = rec.Trace()
		trace.Timestamp = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	})

	It("should print one line per snapshot", func() {
		var buf bytes.Buffer
		Expect(TextEncoder{}.Encode(&buf, trace)).To(Succeed())

		Expect(buf.String()).To(Equal(
			"Initial: tape=101 head=0 state=q0\n" +
				"Step 1: tape=001 head=-1 state=q0\n" +
				"Step 2: tape=1001 head=0 state=qf\n" +
				"Result: accepted after 2 steps\n"))
	})

	It("should encode YAML", func() {
		var buf bytes.Buffer
		Expect(YAMLEncoder{}.Encode(&buf, trace)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("machineID: enc"))
		Expect(buf.String()).To(ContainSubstring("move: L"))
		Expect(buf.String()).To(ContainSubstring("outcome: accepted"))

		var decoded Trace
		Expect(yaml.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Steps).To(Equal(trace.Steps))
		Expect(decoded.Initial).To(Equal(trace.Initial))
		Expect(decoded.Result).To(Equal(trace.Result))
		Expect(decoded.Timestamp.Equal(trace.Timestamp)).To(BeTrue())
	})

	It("should encode JSON", func() {
		var buf bytes.Buffer
		enc, err := EncoderFor("json")
		Expect(err).NotTo(HaveOccurred())
		Expect(enc.Encode(&buf, trace)).To(Succeed())

		var decoded Trace
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Steps).To(Equal(trace.Steps))
		Expect(decoded.Result.Outcome).To(Equal(turingx.OutcomeAccepted))
	})

	It("should resolve formats", func() {
		for _, f := range []string{"", "text", "yaml", "yml", "json"} {
			_, err := EncoderFor(f)
			Expect(err).NotTo(HaveOccurred())
		}
		_, err := EncoderFor("dot")
		Expect(err).To(MatchError(ContainSubstring("unknown trace format")))
	})
})
