package tagservice

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Tokens []apiToken `json:"tokens"`
}

type apiToken struct {
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
	Lemma string   `json:"lemma"`
}
