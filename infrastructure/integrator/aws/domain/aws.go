package awsdomain

const (
	InstanceStateRunning = "running"
	DBStatusAvailable    = "available"
)

type Instance struct {
	ID    string
	State string
}

type DBInstance struct {
	ID     string
	Engine string
	Status string
}

type Bucket struct {
	Name string
}

// DailyCost is one Cost Explorer result row with DAILY granularity.
type DailyCost struct {
	Date   string
	Amount float64
	Unit   string
}
