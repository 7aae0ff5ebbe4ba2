// Package models holds immutable snapshots of the domain records the
// view layer displays. The query/persistence layer that produces them
// lives outside this repository's core; nothing here mutates a record
// after construction.
package models

type EnvironmentType int

const (
	EnvDevelopment EnvironmentType = iota
	EnvUat
	EnvStage
	EnvProd
)

// String returns the short environment tag used by style class names.
func (e EnvironmentType) String() string {
	switch e {
	case EnvUat:
		return "uat"
	case EnvStage:
		return "stg"
	case EnvProd:
		return "prod"
	default:
		return "dev"
	}
}

type ServerType int

const (
	SrvDatabase ServerType = iota
	SrvApplication
	SrvHTTPOrProxy
	SrvMonitoring
	SrvReporting
)

type ServerAccessType int

const (
	SrvAccessSSH ServerAccessType = iota
	SrvAccessRDP
	SrvAccessWWW
	SrvAccessSSHTunnel
)

type Project struct {
	ID       int32
	Name     string
	Icon     []byte
	HasDev   bool
	HasUat   bool
	HasStage bool
	HasProd  bool
}

type Server struct {
	ID          int32
	Desc        string
	IsRetired   bool
	Username    string
	Password    string
	ServerType  ServerType
	AccessType  ServerAccessType
	Environment EnvironmentType
	GroupName   string
	ProjectID   int32
}

type ServerWebsite struct {
	ID        int32
	Desc      string
	URL       string
	Username  string
	Password  string
	ServerID  int32
	GroupName string
}

type ServerExtraUserAccount struct {
	ID        int32
	Desc      string
	Username  string
	Password  string
	ServerID  int32
	GroupName string
}

type ServerPointOfInterest struct {
	ID        int32
	Desc      string
	Path      string
	Text      string
	ServerID  int32
	GroupName string
}

type ProjectPointOfInterest struct {
	ID        int32
	Desc      string
	Path      string
	Text      string
	ProjectID int32
}

type ServerDatabase struct {
	ID        int32
	Desc      string
	Name      string
	Text      string
	Username  string
	Password  string
	ServerID  int32
	GroupName string
}

type ServerLink struct {
	ID          int32
	Desc        string
	ServerID    int32
	ProjectID   int32
	Environment EnvironmentType
	GroupName   string
}

type ServerNote struct {
	ID        int32
	Title     string
	Contents  string
	ServerID  int32
	GroupName string
}

type ProjectNote struct {
	ID        int32
	Title     string
	Contents  string
	ProjectID int32
}
