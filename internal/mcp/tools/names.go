package tools

// Name identifies one of the Voyp tools.
type Name string

const (
	StartCall           Name = "start_call"
	HangupCall          Name = "hangup_call"
	SearchPlaces        Name = "search_places"
	SearchPlace         Name = "search_place"
	SearchPlaceByNumber Name = "search_place_by_number"
	GetCall             Name = "get_call"
	GetUser             Name = "get_user"
)

// Names lists every tool in catalog order.
var Names = []Name{
	StartCall,
	HangupCall,
	SearchPlaces,
	SearchPlace,
	SearchPlaceByNumber,
	GetCall,
	GetUser,
}

// ParseName resolves a tool name sent by a client.
func ParseName(s string) (Name, error) {
	switch n := Name(s); n {
	case StartCall, HangupCall, SearchPlaces, SearchPlace, SearchPlaceByNumber, GetCall, GetUser:
		return n, nil
	}
	return "", &UnknownToolError{Name: s}
}
