package model

// DefaultChoice is the value assigned to a query that matched no candidate.
// Callers replace it with their own default file.
const DefaultChoice = ".defaultChoice"

// AssociationRequest is the inbound payload: the strings to associate and the
// file names they may be associated with.
type AssociationRequest struct {
	Strings []string `json:"strings"`
	Files   []string `json:"files"`
}

// Associations is the success reply: one chosen file (or DefaultChoice) per query string.
type Associations map[string]string

// KeywordsRequest asks for the vocabulary found in a list of file names.
type KeywordsRequest struct {
	Files []string `json:"files"`
}

// KeywordsResponse lists the distinct subtokens of the requested file names.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}
