/*
Copyright © 2019 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package csdmutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/google/go-cloud/blob"
	"github.com/google/go-cloud/blob/fileblob"
	"github.com/google/go-cloud/blob/gcsblob"
	"github.com/google/go-cloud/blob/s3blob"
	"github.com/google/go-cloud/gcp"
	"github.com/sirupsen/logrus"
)

// downloadPrefix is the prefix of the temporary directories that
// downloaded files are stored in.
const downloadPrefix = "csdm-download"

// maybeDownload checks if the input is an existing file locally.
// If not, it checks if the file is a URL or a blob.
// If it is, it downloads the file and
// returns the path to the downloaded file.
// The returned cleanup function removes any downloaded file and
// must be called once the file is no longer needed.
func maybeDownload(ctx context.Context, path string) (local string, cleanup func(), err error) {
	cleanup = func() {}
	// Check if local file exists. If it does, return the given path.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return path, cleanup, nil
	}
	var r io.ReadCloser
	switch {
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		resp, err := http.Get(path)
		if err != nil {
			return path, cleanup, fmt.Errorf("csdm: downloading %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return path, cleanup, fmt.Errorf("csdm: downloading %s: %s", path, resp.Status)
		}
		r = resp.Body
	case IsBlob(path):
		bucket, key, err := openBlob(ctx, path)
		if err != nil {
			return path, cleanup, err
		}
		if r, err = bucket.NewReader(ctx, key); err != nil {
			return path, cleanup, fmt.Errorf("csdm: reading blob %s: %v", path, err)
		}
	default:
		return path, cleanup, nil
	}
	defer r.Close()

	// Prepare a temporary directory for the download, keeping the file name
	// so the format can be determined from its extension.
	dir, err := ioutil.TempDir("", downloadPrefix)
	if err != nil {
		return path, cleanup, fmt.Errorf("csdm: creating temporary download directory: %v", err)
	}
	cleanup = func() {
		if err := os.RemoveAll(dir); err != nil {
			logrus.WithError(err).WithField("dir", dir).Warn("removing downloaded file")
		}
	}
	local = filepath.Join(dir, filepath.Base(path))
	w, err := os.Create(local)
	if err != nil {
		cleanup()
		return path, func() {}, fmt.Errorf("csdm: creating file for download: %v", err)
	}
	if _, err = io.Copy(w, r); err != nil {
		w.Close()
		cleanup()
		return path, func() {}, fmt.Errorf("csdm: downloading %s: %v", path, err)
	}
	if err = w.Close(); err != nil {
		cleanup()
		return path, func() {}, err
	}
	logrus.WithFields(logrus.Fields{"from": path, "to": local}).Debug("downloaded")
	return local, cleanup, nil
}

// IsBlob returns whether the given filename represents a blob.
// (i.e., if it starts with `gs://`, 's3://', or 'file://').
func IsBlob(path string) bool {
	return strings.HasPrefix(path, "gs://") || strings.HasPrefix(path, "s3://") || strings.HasPrefix(path, "file://")
}

// openBlob opens the bucket holding the blob at path and returns the
// bucket and the key of the blob within it.
func openBlob(ctx context.Context, path string) (*blob.Bucket, string, error) {
	url, err := url.Parse(path)
	if err != nil {
		return nil, "", fmt.Errorf("csdm: parsing blob path: %v", err)
	}
	bucket, err := OpenBucket(ctx, url.Scheme+"://"+url.Host)
	if err != nil {
		return nil, "", err
	}
	return bucket, strings.TrimPrefix(url.Path, "/"), nil
}

// OpenBucket returns the blob storage bucket specified by bucketName,
// where bucketName must be in the format 'provider://name' where provider
// is the name of the storage provider and name is the name of the bucket.
// The currently accepted storage providers are "file" for the local filesystem
// (e.g., for testing), "gs" for Google Cloud Storage, and "s3" for AWS S3.
func OpenBucket(ctx context.Context, bucketName string) (*blob.Bucket, error) {
	url, err := url.Parse(bucketName)
	if err != nil {
		return nil, fmt.Errorf("csdmutil.OpenBucket: %v", err)
	}
	switch url.Scheme {
	case "file":
		return fileblob.NewBucket(url.Hostname())
	case "gs":
		return gsBucket(ctx, url.Hostname())
	case "s3":
		return s3Bucket(ctx, url.Hostname())
	default:
		return nil, fmt.Errorf("csdmutil.OpenBucket: invalid provider %s", url.Scheme)
	}
}

func gsBucket(ctx context.Context, name string) (*blob.Bucket, error) {
	// See here for information on credentials:
	// https://cloud.google.com/docs/authentication/getting-started
	creds, err := gcp.DefaultCredentials(ctx)
	if err != nil {
		return nil, err
	}
	c, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, err
	}
	return gcsblob.OpenBucket(ctx, name, c)
}

// s3Bucket opens an s3 storage bucket. It assumes the following
// environment variables are set: AWS_REGION, AWS_ACCESS_KEY_ID, and
// AWS_SECRET_ACCESS_KEY.
func s3Bucket(ctx context.Context, name string) (*blob.Bucket, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	c := &aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewEnvCredentials(),
	}
	s := session.Must(session.NewSession(c))
	return s3blob.OpenBucket(ctx, s, name)
}

// createOutput returns a writer for the output file at path, which may be
// a local file or a blob. The output is only guaranteed to be stored after
// the writer is closed.
func createOutput(ctx context.Context, path string) (io.WriteCloser, error) {
	if !IsBlob(path) {
		return os.Create(path)
	}
	bucket, key, err := openBlob(ctx, path)
	if err != nil {
		return nil, err
	}
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{})
	if err != nil {
		return nil, fmt.Errorf("csdm: creating writer for blob %s: %v", path, err)
	}
	return w, nil
}

// readAll reads the file at path after downloading it if necessary.
func readAll(ctx context.Context, path string) ([]byte, error) {
	local, cleanup, err := maybeDownload(ctx, path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	b, err := ioutil.ReadFile(local)
	if err != nil {
		return nil, fmt.Errorf("csdm: reading dimensions: %v", err)
	}
	return bytes.TrimPrefix(b, []byte("\xef\xbb\xbf")), nil
}
