package gst

import "time"

// MessageType identifies the kind of message posted on a pipeline bus.
// Values are bit flags matching GstMessageType, so several types can be
// combined with | into a filter mask for Bus.TimedPopFiltered.
type MessageType uint32

const (
	MessageUnknown         MessageType = 0
	MessageEOS             MessageType = 1 << 0
	MessageError           MessageType = 1 << 1
	MessageWarning         MessageType = 1 << 2
	MessageInfo            MessageType = 1 << 3
	MessageTag             MessageType = 1 << 4
	MessageBuffering       MessageType = 1 << 5
	MessageStateChanged    MessageType = 1 << 6
	MessageStateDirty      MessageType = 1 << 7
	MessageStepDone        MessageType = 1 << 8
	MessageClockProvide    MessageType = 1 << 9
	MessageClockLost       MessageType = 1 << 10
	MessageNewClock        MessageType = 1 << 11
	MessageStructureChange MessageType = 1 << 12
	MessageStreamStatus    MessageType = 1 << 13
	MessageApplication     MessageType = 1 << 14
	MessageElement         MessageType = 1 << 15
	MessageSegmentStart    MessageType = 1 << 16
	MessageSegmentDone     MessageType = 1 << 17
	MessageDurationChanged MessageType = 1 << 18
	MessageLatency         MessageType = 1 << 19
	MessageAsyncStart      MessageType = 1 << 20
	MessageAsyncDone       MessageType = 1 << 21
	MessageRequestState    MessageType = 1 << 22
	MessageStepStart       MessageType = 1 << 23
	MessageQOS             MessageType = 1 << 24
	MessageProgress        MessageType = 1 << 25
	MessageTOC             MessageType = 1 << 26
	MessageResetTime       MessageType = 1 << 27
	MessageStreamStart     MessageType = 1 << 28
	MessageNeedContext     MessageType = 1 << 29
	MessageHaveContext     MessageType = 1 << 30
	MessageExtended        MessageType = 1 << 31
	MessageAny             MessageType = 0xffffffff
)

var messageTypeNames = []struct {
	t    MessageType
	name string
}{
	{MessageEOS, "eos"},
	{MessageError, "error"},
	{MessageWarning, "warning"},
	{MessageInfo, "info"},
	{MessageTag, "tag"},
	{MessageBuffering, "buffering"},
	{MessageStateChanged, "state-changed"},
	{MessageStateDirty, "state-dirty"},
	{MessageStepDone, "step-done"},
	{MessageClockProvide, "clock-provide"},
	{MessageClockLost, "clock-lost"},
	{MessageNewClock, "new-clock"},
	{MessageStructureChange, "structure-change"},
	{MessageStreamStatus, "stream-status"},
	{MessageApplication, "application"},
	{MessageElement, "element"},
	{MessageSegmentStart, "segment-start"},
	{MessageSegmentDone, "segment-done"},
	{MessageDurationChanged, "duration-changed"},
	{MessageLatency, "latency"},
	{MessageAsyncStart, "async-start"},
	{MessageAsyncDone, "async-done"},
	{MessageRequestState, "request-state"},
	{MessageStepStart, "step-start"},
	{MessageQOS, "qos"},
	{MessageProgress, "progress"},
	{MessageTOC, "toc"},
	{MessageResetTime, "reset-time"},
	{MessageStreamStart, "stream-start"},
	{MessageNeedContext, "need-context"},
	{MessageHaveContext, "have-context"},
	{MessageExtended, "extended"},
}

// Has reports whether all bits of t are set in the mask.
func (m MessageType) Has(t MessageType) bool {
	return m&t == t && t != 0
}

func (m MessageType) String() string {
	switch m {
	case MessageUnknown:
		return "unknown"
	case MessageAny:
		return "any"
	}

	s := ""
	for _, e := range messageTypeNames {
		if m&e.t != 0 {
			if s != "" {
				s += "|"
			}
			s += e.name
		}
	}
	if s == "" {
		return "unknown"
	}
	return s
}

// State is a pipeline element state, matching GstState.
type State int32

const (
	StateVoidPending State = iota // Transient mid-transition state
	StateNull                     // Deactivated, all resources released
	StateReady                    // Resources allocated, stream closed
	StatePaused                   // Prerolled, clock stopped
	StatePlaying                  // Clock running
)

func (s State) String() string {
	switch s {
	case StateVoidPending:
		return "void-pending"
	case StateNull:
		return "null"
	case StateReady:
		return "ready"
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// StateChangeReturn is the result of a state transition request,
// matching GstStateChangeReturn.
type StateChangeReturn int32

const (
	StateChangeFailure   StateChangeReturn = iota // Transition failed
	StateChangeSuccess                            // Transition completed
	StateChangeAsync                              // Transition will complete asynchronously
	StateChangeNoPreroll                          // Completed, but no preroll data (live source)
)

func (r StateChangeReturn) String() string {
	switch r {
	case StateChangeFailure:
		return "failure"
	case StateChangeSuccess:
		return "success"
	case StateChangeAsync:
		return "async"
	case StateChangeNoPreroll:
		return "no-preroll"
	default:
		return "unknown"
	}
}

// ClockTime is a GStreamer time value in nanoseconds.
type ClockTime uint64

// ClockTimeNone is the "wait forever" / undefined time sentinel.
const ClockTimeNone ClockTime = 0xffffffffffffffff

// DurationToClockTime converts a time.Duration to a ClockTime.
// Negative durations map to ClockTimeNone.
func DurationToClockTime(d time.Duration) ClockTime {
	if d < 0 {
		return ClockTimeNone
	}
	return ClockTime(d)
}
