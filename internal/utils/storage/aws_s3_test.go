package storage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwsS3_LinkRoundTrip(t *testing.T) {
	s := &awsS3{bucket: "ecopanier", region: "eu-west-3"}

	link := s.GetPublicLinkKey("inventory-items/item-1.jpg")
	assert.Equal(t, "https://ecopanier.s3.eu-west-3.amazonaws.com/inventory-items/item-1.jpg", link)
	assert.Equal(t, "inventory-items/item-1.jpg", s.GetObjectKeyFromLink(link))
	assert.Empty(t, s.GetObjectKeyFromLink("https://picsum.photos/200"))
}

func TestAwsS3_UploadWithoutClient(t *testing.T) {
	s := &awsS3{}
	fh := &multipart.FileHeader{Filename: "photo.png", Header: textproto.MIMEHeader{}}

	_, err := s.UploadFile("item-1", fh, "inventory-items", AllowImage...)
	assert.ErrorIs(t, err, ErrStorageNotReady)
}
