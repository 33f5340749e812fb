package types

// Profile is the persisted skeleton work history. The JSON form has a single
// recognized field; unknown fields are ignored on load.
type Profile struct {
	AboutMe string `json:"about_me"`
}
