package filesystem

// File - in memory representation of a file content.
type File struct {
	Description string
	Path        string
	Content     string
}

func CreateFile(path, content string) *File {
	return &File{Path: path, Content: content}
}

func (f *File) SetDescription(desc string) *File {
	f.Description = desc
	return f
}
