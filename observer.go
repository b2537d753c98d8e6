package turingx

// StepEvent describes one successful transition.
type StepEvent struct {
	MachineID string   `json:"machineID" yaml:"machineID"`
	Index     int      `json:"index" yaml:"index"` // 1-based since the last Load
	Read      Symbol   `json:"read" yaml:"read"`
	Action    Action   `json:"action" yaml:"action"`
	Before    Snapshot `json:"before" yaml:"before"`
	After     Snapshot `json:"after" yaml:"after"`
}

// Observer is notified after every step that moved the head. Observers run
// synchronously inside Step and must not call back into the machine.
type Observer interface {
	OnStep(evt StepEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(evt StepEvent)

func (f ObserverFunc) OnStep(evt StepEvent) {
	f(evt)
}
