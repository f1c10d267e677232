package scheduling

import "errors"

var (
	ErrVehicleRequired    = errors.New("scheduling: no vehicle selected")
	ErrScheduleIncomplete = errors.New("scheduling: date and time must be selected")
	ErrSlotBooked         = errors.New("scheduling: time slot already booked")
	ErrDetailsIncomplete  = errors.New("scheduling: required contact fields missing")
	ErrNotConfirmable     = errors.New("scheduling: wizard is not on the details step")
)

type Step int

const (
	StepSelectVehicle Step = iota
	StepSchedule
	StepDetails
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepSelectVehicle:
		return "select_vehicle"
	case StepSchedule:
		return "schedule"
	case StepDetails:
		return "details"
	case StepConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// Details holds the contact form of the final wizard step.
type Details struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Comments  string
}

func (d Details) complete() bool {
	return d.FirstName != "" && d.LastName != "" && d.Email != "" && d.Phone != ""
}

// Wizard is the test-drive booking flow: SelectVehicle -> Schedule -> Details
// -> Confirmed. Forward transitions are guarded; going back never discards
// what was entered on later steps.
//
// Changing the vehicle or date bumps a fetch generation so a booked-slots
// response that arrives for a stale selection is discarded.
type Wizard struct {
	step       Step
	vehicleKey string
	dateLabel  string
	timeLabel  string
	details    Details
	booked     BookedSlots
	fetchGen   uint64
}

func NewWizard() *Wizard {
	return &Wizard{booked: BookedSlots{}}
}

func (w *Wizard) Step() Step          { return w.step }
func (w *Wizard) VehicleKey() string  { return w.vehicleKey }
func (w *Wizard) DateLabel() string   { return w.dateLabel }
func (w *Wizard) TimeLabel() string   { return w.timeLabel }
func (w *Wizard) Details() Details    { return w.details }
func (w *Wizard) Generation() uint64  { return w.fetchGen }
func (w *Wizard) Booked() BookedSlots { return w.booked }

func (w *Wizard) SelectVehicle(key string) {
	if key != w.vehicleKey {
		w.fetchGen++
	}
	w.vehicleKey = key
}

func (w *Wizard) SelectDate(label string) {
	if label != w.dateLabel {
		w.fetchGen++
	}
	w.dateLabel = label
}

// SelectTime refuses slots that are already reserved; a booked slot must stay
// unselectable, never silently allowed through.
func (w *Wizard) SelectTime(label string) error {
	if w.booked.IsBooked(w.vehicleKey, w.dateLabel, label) {
		return ErrSlotBooked
	}
	w.timeLabel = label
	return nil
}

func (w *Wizard) SetDetails(d Details) {
	w.details = d
}

// ApplyBookedSlots installs a fetched reservation list for the current
// vehicle and date. Responses carrying an older generation are dropped and
// the method reports false.
func (w *Wizard) ApplyBookedSlots(gen uint64, times []string) bool {
	if gen != w.fetchGen {
		return false
	}
	w.booked.Replace(w.vehicleKey, w.dateLabel, times)
	return true
}

// Next advances one step, enforcing the forward guards.
func (w *Wizard) Next() error {
	switch w.step {
	case StepSelectVehicle:
		if w.vehicleKey == "" {
			return ErrVehicleRequired
		}
		w.step = StepSchedule
	case StepSchedule:
		if w.dateLabel == "" || w.timeLabel == "" {
			return ErrScheduleIncomplete
		}
		if w.booked.IsBooked(w.vehicleKey, w.dateLabel, w.timeLabel) {
			return ErrSlotBooked
		}
		w.step = StepDetails
	case StepDetails:
		return w.Confirm()
	}
	return nil
}

// Back steps to the previous screen. Data entered on later steps is kept.
func (w *Wizard) Back() {
	if w.step > StepSelectVehicle && w.step < StepConfirmed {
		w.step--
	}
}

// Confirm completes the wizard. The local booked map is updated optimistically
// so the slot reads as taken for the rest of the session.
func (w *Wizard) Confirm() error {
	if w.step != StepDetails {
		return ErrNotConfirmable
	}
	if !w.details.complete() {
		return ErrDetailsIncomplete
	}
	if w.booked.IsBooked(w.vehicleKey, w.dateLabel, w.timeLabel) {
		return ErrSlotBooked
	}
	w.booked.Mark(w.vehicleKey, w.dateLabel, w.timeLabel)
	w.step = StepConfirmed
	return nil
}

// Reset returns to the first step with all fields cleared ("schedule another").
// The session's booked map survives so just-taken slots stay unavailable, and
// the fetch generation keeps counting so responses launched before the reset
// can never match a selection made after it.
func (w *Wizard) Reset() {
	*w = Wizard{booked: w.booked, fetchGen: w.fetchGen}
}
