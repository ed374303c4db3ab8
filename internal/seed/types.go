package seed

// State tracks the progress of a single in-process seed run. Terminal states
// are not persisted; every restart recomputes readiness from store contents.
type State string

const (
	StateNotStarted       State = "not-started"
	StateRolesReconciling State = "roles-reconciling"
	StateRolesDone        State = "roles-done"
	StateProvisioning     State = "identity-provisioning"
	StateComplete         State = "complete"
	StateFailed           State = "failed"
)

// Phase statuses used in Result. "skipped" means the phase ran and decided
// there was nothing to do; "not-run" means an earlier phase failed first.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusError   = "error"
	StatusNotRun  = "not-run"
)

// PhaseResult is the outcome of one seed phase.
type PhaseResult struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "ok", "skipped", "error", "not-run"
	Error  string `json:"error,omitempty"`
}

// Result is the aggregate outcome of a seed run. CreatedRoles lists the role
// names created this run, in catalog order; it is empty when every role
// already existed.
type Result struct {
	State        State       `json:"state"`
	Roles        PhaseResult `json:"roles"`
	Admin        PhaseResult `json:"admin"`
	CreatedRoles []string    `json:"createdRoles,omitempty"`
	AdminCreated bool        `json:"adminCreated"`
}
