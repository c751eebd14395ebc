package ecs

import (
	"github.com/phanxgames/isometric"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Token holds the placement of a movable entity.
var Token = donburi.NewComponentType[*isometric.Movable]()

// Tile holds the placement of a static entity.
var Tile = donburi.NewComponentType[*isometric.Static]()

var (
	tokenQuery = donburi.NewQuery(filter.Contains(Token))
	tileQuery  = donburi.NewQuery(filter.Contains(Tile))
)

// Syncer keeps a session's entity registry in step with the Token and Tile
// components of a world.
type Syncer struct {
	sess  *isometric.Session
	known map[string]isometric.SpatialEntity
	seen  map[string]struct{}
}

// NewSyncer creates a syncer feeding sess.
func NewSyncer(sess *isometric.Session) *Syncer {
	return &Syncer{
		sess:  sess,
		known: make(map[string]isometric.SpatialEntity),
		seen:  make(map[string]struct{}),
	}
}

// Sync registers entities that gained a component since the last call and
// deletes those that lost it or were removed. It returns the number of
// entities created and deleted.
func (s *Syncer) Sync(world donburi.World) (created, deleted int) {
	clear(s.seen)
	tokenQuery.Each(world, func(entry *donburi.Entry) {
		if m := Token.GetValue(entry); m != nil && s.visit(m) {
			created++
		}
	})
	tileQuery.Each(world, func(entry *donburi.Entry) {
		if t := Tile.GetValue(entry); t != nil && s.visit(t) {
			created++
		}
	})
	for id := range s.known {
		if _, ok := s.seen[id]; ok {
			continue
		}
		delete(s.known, id)
		s.sess.OnEntityDeleted(id)
		deleted++
	}
	return created, deleted
}

// visit marks e as present and registers it if it is new or replaced. It
// reports whether the session was notified.
func (s *Syncer) visit(e isometric.SpatialEntity) bool {
	id := e.Base().ID
	s.seen[id] = struct{}{}
	if prev, ok := s.known[id]; ok && prev == e {
		return false
	}
	s.known[id] = e
	s.sess.OnEntityCreated(e)
	return true
}

// Updated forwards an update of the entry's placement to the session.
func (s *Syncer) Updated(entry *donburi.Entry) {
	switch {
	case entry.HasComponent(Token):
		if m := Token.GetValue(entry); m != nil {
			s.sess.OnEntityUpdated(m.ID)
		}
	case entry.HasComponent(Tile):
		if t := Tile.GetValue(entry); t != nil {
			s.sess.OnEntityUpdated(t.ID)
		}
	}
}
