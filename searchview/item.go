// Package searchview implements the immediate-mode paint and hit-test
// engine for the result list: a heterogeneous, hierarchically grouped
// sequence of domain items painted onto one scrollable surface, with a
// table of interactive regions rebuilt on every paint pass.
package searchview

import "github.com/padgrove/padgrove/models"

type Kind int

const (
	KindProject Kind = iota + 1
	KindServer
	KindServerWebsite
	KindServerExtraUserAccount
	KindServerPoi
	KindProjectPoi
	KindServerDatabase
	KindServerLink
	KindServerNote
	KindProjectNote
)

// Key identifies an item: variant kind plus primary key. Two items are
// the same item iff their keys are equal. The zero Key matches nothing.
type Key struct {
	Kind Kind
	ID   int32
}

// Item is the closed union over displayable domain records. Each variant
// owns its record by value; the paint pass only ever reads it.
type Item interface {
	Key() Key
	isItem()
}

type ProjectItem struct{ Project models.Project }
type ServerItem struct{ Server models.Server }
type ServerWebsiteItem struct{ Website models.ServerWebsite }
type ServerExtraUserAccountItem struct{ User models.ServerExtraUserAccount }
type ServerPoiItem struct{ Poi models.ServerPointOfInterest }
type ProjectPoiItem struct{ Poi models.ProjectPointOfInterest }
type ServerDatabaseItem struct{ Database models.ServerDatabase }
type ServerLinkItem struct{ Link models.ServerLink }
type ServerNoteItem struct{ Note models.ServerNote }
type ProjectNoteItem struct{ Note models.ProjectNote }

func (i ProjectItem) Key() Key            { return Key{KindProject, i.Project.ID} }
func (i ServerItem) Key() Key             { return Key{KindServer, i.Server.ID} }
func (i ServerWebsiteItem) Key() Key      { return Key{KindServerWebsite, i.Website.ID} }
func (i ServerExtraUserAccountItem) Key() Key {
	return Key{KindServerExtraUserAccount, i.User.ID}
}
func (i ServerPoiItem) Key() Key      { return Key{KindServerPoi, i.Poi.ID} }
func (i ProjectPoiItem) Key() Key     { return Key{KindProjectPoi, i.Poi.ID} }
func (i ServerDatabaseItem) Key() Key { return Key{KindServerDatabase, i.Database.ID} }
func (i ServerLinkItem) Key() Key     { return Key{KindServerLink, i.Link.ID} }
func (i ServerNoteItem) Key() Key     { return Key{KindServerNote, i.Note.ID} }
func (i ProjectNoteItem) Key() Key    { return Key{KindProjectNote, i.Note.ID} }

func (ProjectItem) isItem()                {}
func (ServerItem) isItem()                 {}
func (ServerWebsiteItem) isItem()          {}
func (ServerExtraUserAccountItem) isItem() {}
func (ServerPoiItem) isItem()              {}
func (ProjectPoiItem) isItem()             {}
func (ServerDatabaseItem) isItem()         {}
func (ServerLinkItem) isItem()             {}
func (ServerNoteItem) isItem()             {}
func (ProjectNoteItem) isItem()            {}

// Depth is the two-level hierarchy the caller groups rows into. It only
// selects indentation and box styling, never semantics.
type Depth int

const (
	DepthParent Depth = iota
	DepthChild
)

// Row pairs an item with its depth in the grouped result list.
type Row struct {
	Item  Item
	Depth Depth
}
