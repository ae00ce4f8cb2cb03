package gcpdomain

// ServiceAccountKey is the JSON key file of a service account.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type Instance struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type InstancesScopedList struct {
	Instances []Instance `json:"instances"`
}

type InstanceAggregatedList struct {
	Items map[string]InstancesScopedList `json:"items"`
}

type SQLInstance struct {
	Name            string `json:"name"`
	State           string `json:"state"`
	DatabaseVersion string `json:"databaseVersion"`
}

type SQLInstanceList struct {
	Items []SQLInstance `json:"items"`
}

type Bucket struct {
	Name         string `json:"name"`
	StorageClass string `json:"storageClass"`
}

type BucketList struct {
	Items []Bucket `json:"items"`
}

type QueryRequest struct {
	Query        string `json:"query"`
	UseLegacySQL bool   `json:"useLegacySql"`
	TimeoutMs    int    `json:"timeoutMs"`
}

type QueryCell struct {
	V any `json:"v"`
}

type QueryRow struct {
	F []QueryCell `json:"f"`
}

type QueryResponse struct {
	JobComplete bool       `json:"jobComplete"`
	Rows        []QueryRow `json:"rows"`
}

// ErrorResponse is the Google API error envelope.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
