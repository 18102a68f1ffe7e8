package card

// ContactRecord is a validated contact ready for rendering. Required fields
// (first, last, phone, email) are checked upstream by the conversation layer;
// the renderer only guards against undecodable logo bytes. Logo is read-only
// input owned by the caller and is decoded afresh at each placement.
type ContactRecord struct {
	First   string `json:"first"`
	Last    string `json:"last"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Org     string `json:"org"`
	Title   string `json:"title"`
	ThemeID string `json:"theme"`
	Logo    []byte `json:"-"`
}

// FullName returns the display name drawn on the card and encoded in the
// payload's FN line.
func (r ContactRecord) FullName() string {
	return r.First + " " + r.Last
}
