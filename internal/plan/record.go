package plan

// GenericIcon is shown for custom plans and for defaults without a catalog entry.
const GenericIcon = "Images/app.png"

// Record describes one power plan as presented to the user.
type Record struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
