package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type fakePutter struct {
	putKey     string
	putType    string
	putBody    []byte
	deletedKey string
	putErr     error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKey = aws.ToString(params.Key)
	f.putType = aws.ToString(params.ContentType)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.putBody = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakePutter) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletedKey = aws.ToString(params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("receipt_image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["receipt_image"][0]
}

func TestUploadFile_AcceptsImage(t *testing.T) {
	putter := &fakePutter{}
	s := newAwsS3WithClient(putter, "receipts", "ap-south-1")
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 32)...)

	key, err := s.UploadFile(context.Background(), "expense-1", newFileHeader(t, "lunch.bin", content), "receipts", AllowImage...)

	require.NoError(t, err)
	assert.Equal(t, "receipts/expense-1.png", key)
	assert.Equal(t, "receipts/expense-1.png", putter.putKey)
	assert.Equal(t, "image/png", putter.putType)
	assert.Equal(t, content, putter.putBody)
}

func TestUploadFile_RejectsText(t *testing.T) {
	putter := &fakePutter{}
	s := newAwsS3WithClient(putter, "receipts", "ap-south-1")

	_, err := s.UploadFile(context.Background(), "expense-1", newFileHeader(t, "notes.png", []byte("just some text")), "receipts", AllowImage...)

	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Empty(t, putter.putKey)
}

func TestUploadFile_WrapsPutError(t *testing.T) {
	putter := &fakePutter{putErr: errors.New("access denied")}
	s := newAwsS3WithClient(putter, "receipts", "ap-south-1")

	_, err := s.UploadFile(context.Background(), "expense-1", newFileHeader(t, "a.png", pngHeader), "receipts")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestPublicLinkRoundTrip(t *testing.T) {
	s := newAwsS3WithClient(&fakePutter{}, "receipts", "ap-south-1")

	link := s.GetPublicLinkKey("receipts/expense-1.png")

	assert.Equal(t, "https://receipts.s3.ap-south-1.amazonaws.com/receipts/expense-1.png", link)
	assert.Equal(t, "receipts/expense-1.png", s.GetObjectKeyFromLink(link))
	assert.Empty(t, s.GetObjectKeyFromLink("https://elsewhere.example.com/receipts/expense-1.png"))
}

func TestDeleteFile(t *testing.T) {
	putter := &fakePutter{}
	s := newAwsS3WithClient(putter, "receipts", "ap-south-1")

	require.NoError(t, s.DeleteFile(context.Background(), "receipts/expense-1.png"))
	assert.Equal(t, "receipts/expense-1.png", putter.deletedKey)
}
