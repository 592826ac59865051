package tui

// PayloadTypeText is the only drag payload kind on the board: a plain-text
// project id. Drop targets reject anything else.
const PayloadTypeText = "text/plain"

// Draggable is implemented by widgets that can start a drag. The drag
// carries the widget's id as a plain-text payload.
type Draggable interface {
	DragID() string
}

// DropTarget is implemented by surfaces that accept a drag payload and
// react to over/leave/drop events.
type DropTarget interface {
	// AcceptsPayload reports whether the target takes payloads of the
	// given kind. Only accepting targets get over/leave/drop calls.
	AcceptsPayload(kind string) bool

	// DragOver marks the target surface as receptive.
	DragOver()

	// DragLeave removes the receptive mark.
	DragLeave()

	// Drop hands the payload id to the target and removes the mark.
	Drop(id string)
}

// ProjectCard is the draggable face of one rendered project item.
type ProjectCard struct {
	id string
}

// DragID returns the project id this card carries as drag payload.
func (p ProjectCard) DragID() string {
	return p.id
}

// DragState tracks the single in-flight drag. Per card the implicit
// machine is Idle -> Dragging -> Idle; there are no intermediate states
// and no timeout. Cancelling is simply the drag ending without a drop.
type DragState struct {
	active  bool
	payload string
	kind    string
}

// Active reports whether a drag is in flight.
func (d *DragState) Active() bool {
	return d.active
}

// Payload returns the plain-text id attached at drag start.
func (d *DragState) Payload() string {
	return d.payload
}

// Start begins a drag, attaching the source's id as the payload.
func (d *DragState) Start(source Draggable) {
	d.active = true
	d.payload = source.DragID()
	d.kind = PayloadTypeText
}

// DropOn delivers the payload to the target if the target accepts the
// payload kind, then ends the drag either way.
func (d *DragState) DropOn(target DropTarget) {
	if d.active && target.AcceptsPayload(d.kind) {
		target.Drop(d.payload)
	}
	d.reset()
}

// Cancel abandons the drag without a drop; nothing changes status.
func (d *DragState) Cancel() {
	d.reset()
}

func (d *DragState) reset() {
	d.active = false
	d.payload = ""
	d.kind = ""
}
