package domain

type Area string

const (
	AreaHealth     Area = "health"
	AreaCreativity Area = "creativity"
	AreaSocial     Area = "social"
	AreaNature     Area = "nature"
	AreaFocus      Area = "focus"
	AreaMoney      Area = "money"
	AreaRomance    Area = "romance"
	AreaSelfLove   Area = "selflove"
)

// Areas lists every area in a stable order.
var Areas = []Area{AreaHealth, AreaCreativity, AreaSocial, AreaNature, AreaFocus, AreaMoney, AreaRomance, AreaSelfLove}

func (a Area) Valid() bool {
	for _, v := range Areas {
		if v == a {
			return true
		}
	}
	return false
}

type Cadence string

const (
	CadenceDaily      Cadence = "daily"
	CadenceEvery2Days Cadence = "every2days"
	CadenceEvery3Days Cadence = "every3days"
	CadenceWeekly     Cadence = "weekly"
)

var Cadences = []Cadence{CadenceDaily, CadenceEvery2Days, CadenceEvery3Days, CadenceWeekly}

func (c Cadence) Valid() bool {
	for _, v := range Cadences {
		if v == c {
			return true
		}
	}
	return false
}

type NotifWindow string

const (
	Window6AM  NotifWindow = "6am"
	Window7AM  NotifWindow = "7am"
	Window8AM  NotifWindow = "8am"
	Window9AM  NotifWindow = "9am"
	Window12PM NotifWindow = "12pm"
	Window1PM  NotifWindow = "1pm"
	Window5PM  NotifWindow = "5pm"
	Window6PM  NotifWindow = "6pm"
	Window7PM  NotifWindow = "7pm"
	Window8PM  NotifWindow = "8pm"
)

var NotifWindows = []NotifWindow{
	Window6AM, Window7AM, Window8AM, Window9AM, Window12PM,
	Window1PM, Window5PM, Window6PM, Window7PM, Window8PM,
}

func (w NotifWindow) Valid() bool {
	for _, v := range NotifWindows {
		if v == w {
			return true
		}
	}
	return false
}

// Hour maps the window to its hour of day. The switch is exhaustive over
// NotifWindows; ok is false only for labels outside the enum.
func (w NotifWindow) Hour() (hour int, ok bool) {
	switch w {
	case Window6AM:
		return 6, true
	case Window7AM:
		return 7, true
	case Window8AM:
		return 8, true
	case Window9AM:
		return 9, true
	case Window12PM:
		return 12, true
	case Window1PM:
		return 13, true
	case Window5PM:
		return 17, true
	case Window6PM:
		return 18, true
	case Window7PM:
		return 19, true
	case Window8PM:
		return 20, true
	}
	return 0, false
}

type Tone string

const (
	ToneSerious Tone = "serious"
	TonePlayful Tone = "playful"
)

type Status string

const (
	StatusAssigned  Status = "assigned"
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusExpired   Status = "expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAssigned, StatusStarted, StatusCompleted, StatusSkipped, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped || s == StatusExpired
}

type Feedback string

const (
	FeedbackFire Feedback = "fire"
	FeedbackGood Feedback = "good"
	FeedbackMeh  Feedback = "meh"
	FeedbackBad  Feedback = "bad"
)

func (f Feedback) Valid() bool {
	switch f {
	case FeedbackFire, FeedbackGood, FeedbackMeh, FeedbackBad:
		return true
	}
	return false
}

type BreathingPreference string

const (
	BreathingEnabled  BreathingPreference = "enabled"
	BreathingDisabled BreathingPreference = "disabled"
	BreathingNever    BreathingPreference = "never"
)
