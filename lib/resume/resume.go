package resume

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const DefaultMaxSize int64 = 5 * 1024 * 1024

var allowedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/rtf",
	"text/rtf",
	"text/plain",
}

var (
	ErrEmpty       = errors.New("файл резюме пустой")
	ErrTooLarge    = errors.New("файл резюме слишком большой")
	ErrUnsupported = errors.New("неподдерживаемый формат резюме, допустимы pdf, doc, docx, rtf, txt")
	ErrBadDataURL  = errors.New("некорректный формат резюме")
)

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// ReadFileHeader - чтение загруженного файла с проверкой размера и формата
func ReadFileHeader(fh *multipart.FileHeader, maxSize int64) (*File, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if fh.Size > maxSize {
		return nil, ErrTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка открытия файла резюме")
	}
	defer src.Close()
	body, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла резюме")
	}
	return NewFile(fh.Filename, body, maxSize)
}

func NewFile(name string, body []byte, maxSize int64) (*File, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if len(body) == 0 {
		return nil, ErrEmpty
	}
	if int64(len(body)) > maxSize {
		return nil, ErrTooLarge
	}
	contentType, err := detectType(body)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        name,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// DataURL - файл в виде base64 data URL, в котором резюме уходит во внешний API
func (f File) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", f.ContentType, base64.StdEncoding.EncodeToString(f.Body))
}

// FileName - имя файла, для резюме из data URL подставляется расширение по формату
func (f File) FileName() string {
	if f.Name != "" {
		return f.Name
	}
	if mt := mimetype.Lookup(f.ContentType); mt != nil {
		return "resume" + mt.Extension()
	}
	return "resume"
}

// IsInvalid - файл не прошёл проверку, запрос во внешний API не нужен
func IsInvalid(err error) bool {
	return errors.Is(err, ErrEmpty) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrUnsupported) ||
		errors.Is(err, ErrBadDataURL)
}

// EncodeDataURL - проверка файла и перекодирование в data URL
func EncodeDataURL(name string, body []byte, maxSize int64) (string, error) {
	f, err := NewFile(name, body, maxSize)
	if err != nil {
		return "", err
	}
	return f.DataURL(), nil
}

// DecodeDataURL - разбор уже закодированного резюме (форма отправлена JSON-ом)
func DecodeDataURL(dataURL string, maxSize int64) (*File, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, ErrBadDataURL
	}
	meta, data, found := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrBadDataURL
	}
	body, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(ErrBadDataURL, err.Error())
	}
	return NewFile("", body, maxSize)
}

func detectType(body []byte) (string, error) {
	mt := mimetype.Detect(body)
	for _, allowed := range allowedTypes {
		if mt.Is(allowed) {
			contentType, _, _ := strings.Cut(mt.String(), ";")
			return contentType, nil
		}
	}
	return "", ErrUnsupported
}
