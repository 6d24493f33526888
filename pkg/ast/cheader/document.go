package cheader

// DefaultGenerator is the generator path named in the provenance comment.
const DefaultGenerator = "kernel/tools/syscall_header_gen.py"

// DefaultDescriptor is the descriptor path named in the provenance comment.
const DefaultDescriptor = "kernel/include/api/syscall.xml"

// Provenance 描述文件头部的许可证与生成来源注释。
type Provenance struct {
	License    string
	Generator  string
	Descriptor string
}

// EnumGroup 是一组共享同一预处理条件的枚举成员。
type EnumGroup struct {
	Condition string
	Members   []EnumMember
}

// EnumMember 对应 "Name = Value," 一行。
type EnumMember struct {
	Name  string
	Value int
}
