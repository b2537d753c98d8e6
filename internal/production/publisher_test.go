package production

import (
	"github.com/comalice/turingx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var incrementTable = turingx.MustParseRules(map[string][3]string{
	"q0,0": {"q0", "1", "R"},
	"q0,1": {"q0", "0", "L"},
	"q0,_": {"qf", "1", "R"},
})

var _ = Describe("ChannelPublisher", func() {
	It("should deliver step events", func() {
		ch := make(chan turingx.StepEvent, 10)
		p := NewChannelPublisher(ch)
		m := turingx.NewMachine(incrementTable,
			turingx.WithFinal("qf"),
			turingx.WithID("publisher-test"),
			turingx.WithObserver(p),
		)

		m.Load("1")
		Expect(m.RunDefault().Accepted).To(BeTrue())

		Expect(ch).To(HaveLen(2))
		first := <-ch
		Expect(first.MachineID).To(Equal("publisher-test"))
		Expect(first.Index).To(Equal(1))
		Expect(first.After.Head).To(Equal(-1))
		Expect(p.Dropped()).To(BeZero())
	})

	It("should drop on backpressure", func() {
		ch := make(chan turingx.StepEvent, 1)
		p := NewChannelPublisher(ch)

		p.OnStep(turingx.StepEvent{Index: 1})
		p.OnStep(turingx.StepEvent{Index: 2})

		Expect(p.Dropped()).To(Equal(1))
		Expect((<-ch).Index).To(Equal(1))
	})

	It("should close the channel", func() {
		ch := make(chan turingx.StepEvent, 1)
		p := NewChannelPublisher(ch)

		Expect(p.Close()).To(Succeed())
		_, open := <-ch
		Expect(open).To(BeFalse())
	})
})

var _ = Describe("Fanout", func() {
	var (
		mockCtrl *gomock.Controller
		first    *MockObserver
		second   *MockObserver
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		first = NewMockObserver(mockCtrl)
		second = NewMockObserver(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should forward each event to every observer in order", func() {
		evt := turingx.StepEvent{Index: 7}
		gomock.InOrder(
			first.EXPECT().OnStep(evt),
			second.EXPECT().OnStep(evt),
		)

		Fanout(first, nil, second).OnStep(evt)
	})

	It("should observe every step of a run", func() {
		first.EXPECT().OnStep(gomock.Any()).Times(2)
		second.EXPECT().OnStep(gomock.Any()).Times(2)

		m := turingx.NewMachine(incrementTable,
			turingx.WithFinal("qf"),
			turingx.WithObserver(Fanout(first, second)),
		)
		m.Load("101")
		res := m.RunDefault()

		Expect(res.Accepted).To(BeTrue())
		Expect(res.Steps).To(Equal(2))
	})

	It("should not notify on a stuck step", func() {
		m := turingx.NewMachine(incrementTable, turingx.WithObserver(Fanout(first)))
		m.Load("x")

		Expect(m.Step()).To(Equal(turingx.Stuck))
	})
})
