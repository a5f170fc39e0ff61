package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-lifeseq/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager handles hot-plug detection of MIDI controllers
type DeviceManager struct {
	controllers  map[string]Controller
	mu           sync.RWMutex
	events       chan DeviceEvent
	pollRate     time.Duration
	keyboardPort string // substring of the keyboard's input port, "" disables
	launchpad    bool
}

// NewDeviceManager creates a device manager. launchpad enables Launchpad
// detection; keyboardPort selects an input port used as a keyboard.
func NewDeviceManager(launchpad bool, keyboardPort string) *DeviceManager {
	return &DeviceManager{
		controllers:  make(map[string]Controller),
		events:       make(chan DeviceEvent, 16),
		pollRate:     time.Second,
		keyboardPort: strings.ToLower(keyboardPort),
		launchpad:    launchpad,
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controllers returns a snapshot of connected controllers
func (dm *DeviceManager) Controllers() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	out := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		out[k] = v
	}
	return out
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	// CoreMIDI can hang while listing ports
	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts(), outPorts: gomidi.GetOutPorts()}
	}()

	var ports portsResult
	select {
	case ports = <-ch:
	case <-time.After(3 * time.Second):
		debug.Log("devices", "port scan timed out")
		return
	}

	seenIDs := make(map[string]bool)
	for _, inPort := range ports.inPorts {
		id := inPort.String()
		name := strings.ToLower(id)

		kind := ControllerUnknown
		switch {
		case dm.launchpad && isLaunchpad(name):
			kind = ControllerLaunchpad
		case dm.keyboardPort != "" && strings.Contains(name, dm.keyboardPort):
			kind = ControllerKeyboard
		default:
			continue
		}
		seenIDs[id] = true

		dm.mu.RLock()
		_, exists := dm.controllers[id]
		dm.mu.RUnlock()
		if exists {
			continue
		}

		var (
			ctrl Controller
			err  error
		)
		if kind == ControllerLaunchpad {
			ctrl, err = NewLaunchpadController(id, inPort, matchingOut(name, ports.outPorts))
		} else {
			ctrl, err = NewKeyboardController(id, inPort)
		}
		if err != nil {
			debug.Log("devices", "open %s: %v", id, err)
			continue
		}

		dm.mu.Lock()
		dm.controllers[id] = ctrl
		dm.mu.Unlock()
		debug.Log("devices", "connected %s", id)
		dm.events <- DeviceEvent{Type: DeviceConnected, Controller: ctrl, ID: id}
	}

	dm.mu.Lock()
	var toRemove []string
	for id := range dm.controllers {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		dm.controllers[id].Close()
		delete(dm.controllers, id)
		debug.Log("devices", "disconnected %s", id)
		dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
	}
	dm.mu.Unlock()
}

func matchingOut(name string, outs []drivers.Out) drivers.Out {
	for _, op := range outs {
		if strings.ToLower(op.String()) == name {
			return op
		}
	}
	return nil
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

func isLaunchpad(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "launchpad") && strings.Contains(name, "midi")
}
