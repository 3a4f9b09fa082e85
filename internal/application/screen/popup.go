package screen

// Popup is a screen-like overlay that lives inside another container's
// item set while it is open.
type Popup struct {
	*Screen
}

// NewPopup creates an empty popup. Its name doubles as its item key.
func NewPopup(name string) *Popup {
	return &Popup{Screen: New(name, nil)}
}

// TogglePopup opens p inside c if it is absent, and closes it otherwise.
//
// The close hook runs before removal so the popup can still reach its own
// items; the open hook runs after insertion so it is drawn while animating.
// Presence in c is the only open/closed state.
func TogglePopup(c Container, p PopupItem) (opened bool) {
	if c.HasItem(p.Name()) {
		p.OnClose()
		c.RemoveItem(p.Name())
		return false
	}
	c.AddItem(p.Name(), p)
	p.OnOpen()
	return true
}
