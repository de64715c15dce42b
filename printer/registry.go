// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package printer

import "sync"

// registry is the process-wide, ordered list of registered printers, plus
// lookup indices by driver ID and long name. It is built once at process
// start by each driver package's init() and never mutated afterward in
// normal operation; the mutex only guards against concurrent Register calls
// racing with lookups during test setup.
var registry struct {
	mu       sync.RWMutex
	printers []*Printer
	byDriver map[string]*Printer
	byLongNm map[string]*Printer
}

// Register adds p to the global printer list. Re-registering a driver_id
// already present replaces the earlier entry in place (its index in the
// ordered list is preserved), matching the "last definition wins" behavior
// a process restart would otherwise need.
func Register(p *Printer) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.byDriver == nil {
		registry.byDriver = make(map[string]*Printer)
		registry.byLongNm = make(map[string]*Printer)
	}
	if existing, ok := registry.byDriver[p.DriverID]; ok {
		for i, q := range registry.printers {
			if q == existing {
				registry.printers[i] = p
				break
			}
		}
	} else {
		registry.printers = append(registry.printers, p)
	}
	registry.byDriver[p.DriverID] = p
	registry.byLongNm[p.LongName] = p
}

// PrinterModelCount returns the number of registered printers.
func PrinterModelCount() int {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return len(registry.printers)
}

// GetByIndex returns the i'th registered printer in registration order.
func GetByIndex(i int) (*Printer, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if i < 0 || i >= len(registry.printers) {
		return nil, false
	}
	return registry.printers[i], true
}

// GetByDriver returns the printer registered under the given driver_id.
func GetByDriver(driverID string) (*Printer, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	p, ok := registry.byDriver[driverID]
	return p, ok
}

// GetByLongName returns the printer registered under the given long_name.
func GetByLongName(longName string) (*Printer, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	p, ok := registry.byLongNm[longName]
	return p, ok
}
