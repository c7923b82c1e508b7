// cmd/knobdemo/session.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/mmp/knobs/log"
	"github.com/mmp/knobs/util"
)

const (
	sessionCachePath = "session.msgpack.zst"
	// Sessions older than this are ignored on startup.
	sessionMaxAge = 30 * 24 * time.Hour
	maxCacheBytes = 16 * 1024 * 1024
)

// Session holds the knob angles from the last run. Unlike the Config it
// is disposable and lives in the user's cache directory.
type Session struct {
	Angles map[string]float64 `msgpack:"angles"`
}

func NewSession() *Session {
	return &Session{Angles: make(map[string]float64)}
}

func LoadSession(lg *log.Logger) (*Session, error) {
	s := NewSession()
	t, err := util.CacheRetrieveObject(sessionCachePath, s)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSession(), nil
	} else if err != nil {
		return NewSession(), err
	}

	if time.Since(t) > sessionMaxAge {
		lg.Infof("Ignoring session from %s", t.Format(time.DateTime))
		return NewSession(), nil
	}
	if s.Angles == nil {
		s.Angles = make(map[string]float64)
	}
	return s, nil
}

func (s *Session) Save(lg *log.Logger) {
	if err := util.CacheStoreObject(sessionCachePath, s); err != nil {
		lg.Errorf("Unable to save session: %v", err)
	}
	if err := util.CacheCullObjects(maxCacheBytes); err != nil {
		lg.Warnf("Unable to cull cache: %v", err)
	}
}

// Update stores the angle for the named knob.
func (s *Session) Update(name string, angle float64) {
	s.Angles[name] = angle
}
