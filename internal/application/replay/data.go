package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int      `json:"f"`            // Frame number
	P  []string `json:"p,omitempty"`  // Actions just pressed
	MX int      `json:"mx"`           // MouseX
	MY int      `json:"my"`           // MouseY
	MC bool     `json:"mc,omitempty"` // MouseClick
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
