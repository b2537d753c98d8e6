package production

import (
	"github.com/comalice/turingx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TraceRecorder", func() {
	run := func(rec *TraceRecorder, input string) *turingx.Machine {
		m := turingx.NewMachine(incrementTable,
			turingx.WithFinal("qf"),
			turingx.WithID("trace-test"),
			turingx.WithObserver(rec),
		)
		m.Load(input)
		rec.Begin(m, input)
		rec.Finish(m.RunDefault())
		return m
	}

	It("should record every step", func() {
		rec := NewTraceRecorder(0)
		run(rec, "101")

		t := rec.Trace()
		Expect(t.MachineID).To(Equal("trace-test"))
		Expect(t.Input).To(Equal("101"))
		Expect(t.Table).To(Equal(incrementTable.Fingerprint()))
		Expect(t.Initial).To(Equal(turingx.Snapshot{Tape: "101", Head: 0, State: "q0"}))
		Expect(t.Steps).To(HaveLen(2))
		Expect(t.Steps[0].After).To(Equal(turingx.Snapshot{Tape: "001", Head: -1, State: "q0"}))
		Expect(t.Steps[1].After).To(Equal(turingx.Snapshot{Tape: "1001", Head: 0, State: "qf"}))
		Expect(t.Result).NotTo(BeNil())
		Expect(t.Result.Outcome).To(Equal(turingx.OutcomeAccepted))
		Expect(t.Timestamp.IsZero()).To(BeFalse())
	})

	It("should honor the step limit", func() {
		rec := NewTraceRecorder(1)
		run(rec, "1")

		Expect(rec.Trace().Steps).To(HaveLen(1))
		Expect(rec.Skipped()).To(Equal(1))
	})

	It("should reset on Begin", func() {
		rec := NewTraceRecorder(0)
		m := run(rec, "1")

		m.Load("0")
		rec.Begin(m, "0")

		Expect(rec.Trace().Steps).To(BeEmpty())
		Expect(rec.Trace().Result).To(BeNil())
		Expect(rec.Trace().Input).To(Equal("0"))
	})

	It("should return copies", func() {
		rec := NewTraceRecorder(0)
		run(rec, "1")

		t := rec.Trace()
		t.Steps[0].Index = 99
		t.Result.Steps = 99

		Expect(rec.Trace().Steps[0].Index).To(Equal(1))
		Expect(rec.Trace().Result.Steps).To(Equal(2))
	})
})
