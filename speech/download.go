package speech

import (
	"crypto/tls"
	"fmt"
	"os"
	"time"

	"gopkg.in/h2non/gentleman.v2"
	gtls "gopkg.in/h2non/gentleman.v2/plugins/tls"
)

const DOWNLOAD_TIMEOUT = time.Second * 30

// downloadAudio - fetches the clip into path
func (t *Transcriber) downloadAudio(url, path string) error {
	t.createClientIfNeed()

	req := t.client.Request()
	req.URL(url)

	res, err := req.Send()
	if err != nil {
		return err
	}

	if !res.Ok {
		return fmt.Errorf("audio request status %d", res.StatusCode)
	}

	return os.WriteFile(path, res.Bytes(), 0644)
}

func (t *Transcriber) createClientIfNeed() {
	if t.client != nil {
		return
	}

	t.client = gentleman.New()
	t.client.Context.Client.Timeout = DOWNLOAD_TIMEOUT
	t.client.Use(gtls.Config(&tls.Config{
		InsecureSkipVerify: true,
	}))
}
