package core

import "sync"

/**
 * @brief Payload handed to export event listeners. Only the fields that
 * make sense for a given code are populated.
 */
type EventContext struct {
	MeshName string
	MeshID   string
	Index    int
	Total    int
	Views    int
	Bakes    int
	Err      error
}

// Export progress event codes.
type SystemEventCode int

const (
	// A new export run began. Total carries the mesh count.
	EVENT_CODE_RUN_STARTED SystemEventCode = 0x01

	// Processing of one mesh began.
	EVENT_CODE_MESH_STARTED SystemEventCode = 0x02

	// One mesh finished: baked, backed up and rendered.
	EVENT_CODE_MESH_COMPLETED SystemEventCode = 0x03

	// One mesh failed; Err carries the cause. The run continues.
	EVENT_CODE_MESH_FAILED SystemEventCode = 0x04

	// A batch boundary was crossed and cleanup/checkpointing ran.
	EVENT_CODE_BATCH_COMPLETED SystemEventCode = 0x05

	// The whole run finished.
	EVENT_CODE_RUN_COMPLETED SystemEventCode = 0x06

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	mutex      sync.RWMutex
	registered map[SystemEventCode][]*registeredEvent
}

var onceEvent sync.Once
var isInitialized bool = false
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[SystemEventCode][]*registeredEvent),
		}
	})
	isInitialized = true
	return true
}

func EventSystemShutdown() error {
	if eventState != nil {
		eventState.mutex.Lock()
		eventState.registered = make(map[SystemEventCode][]*registeredEvent)
		eventState.mutex.Unlock()
	}
	isInitialized = false
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listener/callback combos will not be registered again and will cause this to return FALSE.
 * @param code The event code to listen for.
 * @param listener A pointer to a listener instance. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns TRUE if the event is successfully registered; otherwise false.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if !isInitialized {
		return false
	}
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()

	for _, ev := range eventState.registered[code] {
		if ev.listener != nil && ev.listener == listener {
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * TRUE, the event is considered handled and is not passed on to any more listeners.
 * @param code The event code to fire.
 * @param sender A pointer to the sender. Can be nil.
 * @param data The event data.
 * @returns TRUE if handled, otherwise FALSE.
 */
func EventFire(code SystemEventCode, sender interface{}, data EventContext) bool {
	if !isInitialized {
		return false
	}
	eventState.mutex.RLock()
	listeners := eventState.registered[code]
	eventState.mutex.RUnlock()

	for _, ev := range listeners {
		if ev.callback(code, sender, data) {
			return true
		}
	}
	return false
}
