package connection

type RespAttack struct {
	Row            int      `json:"row"`
	Col            int      `json:"col"`
	PositionState  uint8    `json:"position_state"`
	ShipName       string   `json:"ship_name,omitempty"`
	Sunk           bool     `json:"sunk"`
	RemainingShips int      `json:"remaining_ships"`
	StandingShips  []string `json:"standing_ships,omitempty"`
	IsGameOver     bool     `json:"is_game_over"`
}

type RespRevealToggle struct {
	RevealMode bool `json:"reveal_mode"`
}

type RespEndGame struct {
	GameUuid string `json:"game_uuid"`
	Turns    int    `json:"turns"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
