package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

// ErrUnexpectedStatus indica que a planilha publicada respondeu com status diferente de 2xx
var ErrUnexpectedStatus = errors.New("sheets: unexpected response status")

// ErrDocumentTooLarge indica que o CSV passou do limite de leitura; o conteúdo parcial é descartado
var ErrDocumentTooLarge = errors.New("sheets: document exceeds size limit")

// maxDocumentSize limita o tamanho do CSV lido (planilhas publicadas são pequenas)
const maxDocumentSize = 32 << 20

type Client interface {
	// FetchCSV baixa o CSV publicado. Uma única tentativa, sem retry.
	FetchCSV(ctx context.Context) ([]byte, error)
	SourceURL() string
}

type SheetsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	MaxBytes   int64
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Sheet.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SheetsClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		MaxBytes:   maxDocumentSize,
	}
}

func (c *SheetsClient) SourceURL() string {
	return c.Cfg.Sheet.CSVURL
}

func (c *SheetsClient) FetchCSV(ctx context.Context) ([]byte, error) {
	url := c.SourceURL()
	if url == "" {
		return nil, errors.New("sheets: csv url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição da planilha")
		return nil, errors.Wrap(err, "sheets: build request")
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar a planilha publicada")
		return nil, errors.Wrap(err, "sheets: fetch csv")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("Planilha respondeu com status inesperado")
		return nil, errors.Wrap(ErrUnexpectedStatus, fmt.Sprintf("status %d", resp.StatusCode))
	}

	limit := c.MaxBytes
	if limit <= 0 {
		limit = maxDocumentSize
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "sheets: read body")
	}
	if int64(len(data)) > limit {
		logrus.WithField("max_bytes", limit).Error("Planilha maior que o limite permitido")
		return nil, errors.Wrap(ErrDocumentTooLarge, fmt.Sprintf("limit %d bytes", limit))
	}

	logrus.WithFields(logrus.Fields{
		"bytes": len(data),
	}).Debug("Planilha baixada com sucesso")

	return data, nil
}
